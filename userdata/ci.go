package userdata

import "github.com/mbus-go/mbus/errs"

// CIKind discriminates the control-information field's user-data
// layout.
type CIKind uint8

const (
	CIDataSend CIKind = iota
	CIApplicationReset
	CIVariableData
	CIFixedData
	CISelectionOfSlaves
	CIAbort
)

func (k CIKind) String() string {
	switch k {
	case CIDataSend:
		return "DataSend"
	case CIApplicationReset:
		return "ApplicationReset"
	case CIVariableData:
		return "VariableData"
	case CIFixedData:
		return "FixedData"
	case CISelectionOfSlaves:
		return "SelectionOfSlaves"
	case CIAbort:
		return "Abort"
	default:
		return "Unknown"
	}
}

const shortHeaderLen = 4 // access, status, signature(2)

// UserData is the decoded control-information field plus whatever
// body it carries. RecordStream holds the bytes meant for the record
// assembler (populated for CIDataSend and CIVariableData); FixedData
// holds the opaque payload of a fixed-data response, which this
// module does not decode further (the fixed-data record layout is an
// external collaborator's concern per the frame's external
// interfaces).
type UserData struct {
	Kind         CIKind
	CI           byte
	FixedHeader  FixedHeader
	RecordStream []byte
	FixedData    []byte
}

// Parse dispatches on the CI byte (data[0]) and decodes the fixed
// header where one is present. data is the frame layer's UserData
// slice, i.e. it starts at CI.
func Parse(data []byte) (UserData, error) {
	if len(data) == 0 {
		return UserData{}, errs.ErrBufferTooShort
	}

	ci := data[0]
	body := data[1:]

	switch ci {
	case 0x51, 0x52:
		return UserData{Kind: CIDataSend, CI: ci, RecordStream: body}, nil
	case 0x70:
		return UserData{Kind: CIApplicationReset, CI: ci, FixedData: body}, nil
	case 0x72:
		header, err := ParseFixedHeader(body)
		if err != nil {
			return UserData{}, err
		}

		return UserData{
			Kind:         CIVariableData,
			CI:           ci,
			FixedHeader:  header,
			RecordStream: body[fixedHeaderLen:],
		}, nil
	case 0x76:
		if len(body) < shortHeaderLen {
			return UserData{}, errs.ErrBufferTooShort
		}

		header := FixedHeader{
			AccessNumber: body[0],
			Status:       Status(body[1]),
			Signature:    uint16(body[2]) | uint16(body[3])<<8,
		}

		return UserData{
			Kind:         CIVariableData,
			CI:           ci,
			FixedHeader:  header,
			RecordStream: body[shortHeaderLen:],
		}, nil
	case 0x73, 0x7B:
		return UserData{Kind: CIFixedData, CI: ci, FixedData: body}, nil
	case 0x78, 0x79:
		return UserData{Kind: CISelectionOfSlaves, CI: ci, FixedData: body}, nil
	case 0x7A:
		var reason byte
		if len(body) > 0 {
			reason = body[0]
		}

		return UserData{}, &errs.AbortError{Reason: reason}
	default:
		return UserData{}, errs.ErrInvalidControlInformation
	}
}
