package frame

import (
	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
)

// validAuthReason restricts AUTH to the three reason codes the
// enhanced-authentication exchange actually uses.
func validAuthReason(rc packet.ReasonCode) bool {
	switch rc {
	case packet.ReasonSuccess, packet.ReasonContinueAuthentication, packet.ReasonReAuthenticate:
		return true
	default:
		return false
	}
}

// Auth is an MQTT 5 AUTH packet. A zero-length body is valid and implies
// ReasonSuccess with no properties, the same shorthand DISCONNECT uses.
type Auth struct {
	ReasonCode packet.ReasonCode
	Properties props.Set
}

func (a *Auth) Encode() ([]byte, error) {
	if !validAuthReason(a.ReasonCode) {
		return nil, packet.ErrReasonCodeNotPermitted
	}

	if a.ReasonCode == packet.ReasonSuccess && a.Properties.IsEmpty() {
		fh := packet.FixedHeader{Type: packet.AUTH, RemainingLength: 0}
		return packet.EncodeFixedHeader(nil, fh)
	}

	propsEnc, err := a.Properties.Encode()
	if err != nil {
		return nil, err
	}

	body := append([]byte{byte(a.ReasonCode)}, propsEnc...)

	fh := packet.FixedHeader{Type: packet.AUTH, RemainingLength: uint32(len(body))}
	out, err := packet.EncodeFixedHeader(nil, fh)
	if err != nil {
		return nil, err
	}
	return append(out, body...), nil
}

func DecodeAuth(fh packet.FixedHeader, body []byte) (*Auth, error) {
	if len(body) == 0 {
		return &Auth{ReasonCode: packet.ReasonSuccess}, nil
	}

	reasonCode := packet.ReasonCode(body[0])
	if !validAuthReason(reasonCode) {
		return nil, packet.ErrReasonCodeNotPermitted
	}

	if len(body) == 1 {
		return &Auth{ReasonCode: reasonCode}, nil
	}

	propSet, n, err := props.Parse(body[1:])
	if err != nil {
		return nil, err
	}
	if 1+n != len(body) {
		return nil, packet.ErrTrailingBytes
	}

	return &Auth{ReasonCode: reasonCode, Properties: propSet}, nil
}
