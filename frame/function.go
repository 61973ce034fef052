package frame

import "github.com/mbus-go/mbus/errs"

// FuncKind discriminates the C-field function codes this module
// recognises.
type FuncKind uint8

const (
	FuncSndNke FuncKind = iota
	FuncSndUd
	FuncReqUd1
	FuncReqUd2
	FuncRspUd
)

func (k FuncKind) String() string {
	switch k {
	case FuncSndNke:
		return "SndNke"
	case FuncSndUd:
		return "SndUd"
	case FuncReqUd1:
		return "ReqUd1"
	case FuncReqUd2:
		return "ReqUd2"
	case FuncRspUd:
		return "RspUd"
	default:
		return "Unknown"
	}
}

// Function is the decoded C-field. Fcb (frame count bit) is only
// meaningful for master-direction functions; Acd/Dfc only for
// RspUd. Dir reports the direction bit as read off the wire.
type Function struct {
	Kind FuncKind
	Dir  bool // true: master -> slave
	Fcb  bool
	Fcv  bool
	Acd  bool
	Dfc  bool
}

const (
	cMaskDir  = 0x40
	cMaskFcb  = 0x20
	cMaskAcd  = 0x20
	cMaskFcv  = 0x10
	cMaskDfc  = 0x10
	cMaskCode = 0x0F
)

func decodeFunction(c byte) (Function, error) {
	dir := c&cMaskDir != 0
	code := c & cMaskCode

	if dir {
		f := Function{
			Dir: true,
			Fcb: c&cMaskFcb != 0,
			Fcv: c&cMaskFcv != 0,
		}
		switch code {
		case 0x0:
			f.Kind = FuncSndNke
		case 0x3:
			f.Kind = FuncSndUd
		case 0xA:
			f.Kind = FuncReqUd1
		case 0xB:
			f.Kind = FuncReqUd2
		default:
			return Function{}, errs.ErrInvalidFunction
		}

		return f, nil
	}

	f := Function{
		Acd: c&cMaskAcd != 0,
		Dfc: c&cMaskDfc != 0,
	}
	switch code {
	case 0x8:
		f.Kind = FuncRspUd
	default:
		return Function{}, errs.ErrInvalidFunction
	}

	return f, nil
}

// Address is the A-field of the frame. Reserved values are preserved
// verbatim; helpers below decode the three special meanings defined
// by the standard.
type Address uint8

const (
	AddressBroadcastNoReply   Address = 0x00
	AddressSpecialFirst       Address = 0xFD
	AddressSpecialSecond      Address = 0xFE
	AddressBroadcastWithReply Address = 0xFF
)

func (a Address) IsBroadcastNoReply() bool { return a == AddressBroadcastNoReply }
func (a Address) IsBroadcastWithReply() bool {
	return a == AddressBroadcastWithReply
}
func (a Address) IsSpecial() bool {
	return a == AddressSpecialFirst || a == AddressSpecialSecond
}
func (a Address) IsPrimary() bool {
	return !a.IsBroadcastNoReply() && !a.IsBroadcastWithReply() && !a.IsSpecial()
}
