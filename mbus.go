// Package mbus decodes M-Bus (EN 13757-3) application-layer
// telegrams: the link-layer frame, the fixed user-data header, and
// the record stream, composed into a single entry point for callers
// who just want a telegram's decoded readings.
package mbus

import (
	"github.com/mbus-go/mbus/frame"
	"github.com/mbus-go/mbus/record"
	"github.com/mbus-go/mbus/userdata"
)

// Telegram is one fully decoded M-Bus application-layer message: the
// link-layer frame it arrived in, the fixed header identifying the
// meter, and the record stream's decoded readings.
type Telegram struct {
	Frame  frame.Frame
	Header userdata.FixedHeader
	Stream record.Stream
}

// Decode parses one complete link-layer frame and, for frames
// carrying a variable-data record stream, decodes it fully. data
// must contain exactly one frame with no leading or trailing bytes.
//
// Frames that carry no record stream (single-character
// acknowledgements, short/control frames, fixed-data responses) are
// returned with a zero-value Stream; callers that need the fixed-data
// payload read Telegram.Frame.UserData via the userdata package
// directly.
func Decode(data []byte, opts ...record.Option) (Telegram, error) {
	f, err := frame.Parse(data)
	if err != nil {
		return Telegram{}, err
	}

	if f.Kind != frame.KindLong {
		return Telegram{Frame: f}, nil
	}

	ud, err := userdata.Parse(f.UserData)
	if err != nil {
		return Telegram{}, err
	}

	t := Telegram{Frame: f, Header: ud.FixedHeader}

	if ud.RecordStream == nil {
		return t, nil
	}

	stream, err := record.Parse(ud.RecordStream, opts...)
	if err != nil {
		return Telegram{}, err
	}

	t.Stream = stream

	return t, nil
}
