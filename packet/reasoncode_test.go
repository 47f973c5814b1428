package packet

import "testing"

func TestReasonCodeIsError(t *testing.T) {
	if ReasonSuccess.IsError() {
		t.Error("Success must not classify as an error")
	}
	if !ReasonUnspecifiedError.IsError() {
		t.Error("UnspecifiedError must classify as an error")
	}
	if ReasonGrantedQoS2.IsError() {
		t.Error("GrantedQoS2 (0x02) must not classify as an error")
	}
}

func TestPubAckPermittedReasonCodes(t *testing.T) {
	if !ValidPubAckReason(ReasonSuccess) {
		t.Error("Success must be valid for PUBACK")
	}
	if !ValidPubAckReason(ReasonPayloadFormatInvalid) {
		t.Error("PayloadFormatInvalid must be valid for PUBACK")
	}
	if ValidPubAckReason(ReasonPacketIdentifierNotFound) {
		t.Error("PacketIdentifierNotFound must not be valid for PUBACK")
	}
}

func TestPubRelPermittedReasonCodes(t *testing.T) {
	if !ValidPubRelReason(ReasonSuccess) || !ValidPubRelReason(ReasonPacketIdentifierNotFound) {
		t.Error("expected Success and PacketIdentifierNotFound to be valid for PUBREL")
	}
	if ValidPubRelReason(ReasonQuotaExceeded) {
		t.Error("QuotaExceeded must not be valid for PUBREL")
	}
}

func TestUnknownReasonCodeByteRejected(t *testing.T) {
	if KnownReasonCode(0x03) {
		t.Error("0x03 is not a defined reason code")
	}
	if !KnownReasonCode(0x00) {
		t.Error("0x00 (Success) must be known")
	}
}
