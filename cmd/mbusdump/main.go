// Command mbusdump decodes one M-Bus telegram and prints its record
// stream. It is a convenience example, not part of the module's
// public contract.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mbus-go/mbus"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	var hexTelegram string
	if flag.NArg() > 0 {
		hexTelegram = flag.Arg(0)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			slog.Error("reading telegram from stdin", "error", err)
			os.Exit(1)
		}
		hexTelegram = string(data)
	}

	if err := run(hexTelegram); err != nil {
		slog.Error("decode failed", "error", err)
		os.Exit(1)
	}
}

func run(hexTelegram string) error {
	raw := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
			return -1
		}

		return r
	}, hexTelegram)

	data, err := hex.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}

	telegram, err := mbus.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding telegram: %w", err)
	}

	fmt.Printf("frame: %s  identification: %08d  manufacturer: %s\n",
		telegram.Frame.Kind, telegram.Header.Identification, telegram.Header.Manufacturer)

	for i, rec := range telegram.Stream.Records {
		fmt.Printf("  [%d] quantity=%-20s value=%v", i, rec.Quantity, rec.Value)
		if rec.Text != "" {
			fmt.Printf(" text=%q", rec.Text)
		}
		if rec.StorageNumber != 0 {
			fmt.Printf(" storage=%d", rec.StorageNumber)
		}
		if rec.Tariff != 0 {
			fmt.Printf(" tariff=%d", rec.Tariff)
		}
		fmt.Println()
	}

	if telegram.Stream.MoreFollows {
		fmt.Println("more records follow (stream was split across telegrams)")
	}

	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mbusdump [hex-telegram]\n\n")
	fmt.Fprintf(os.Stderr, "Decodes one M-Bus telegram and prints its record stream.\n")
	fmt.Fprintf(os.Stderr, "If no argument is given, the hex telegram is read from stdin.\n")
}
