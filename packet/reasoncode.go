package packet

// ReasonCode is a single-byte MQTT 5 reason code. The same numeric value
// means different things depending on which packet carries it (e.g. 0x00
// is Success everywhere, but 0x01 is GrantedQoS1 only in SUBACK).
type ReasonCode byte

const (
	ReasonSuccess                             ReasonCode = 0x00
	ReasonNormalDisconnection                 ReasonCode = 0x00
	ReasonGrantedQoS0                         ReasonCode = 0x00
	ReasonGrantedQoS1                         ReasonCode = 0x01
	ReasonGrantedQoS2                         ReasonCode = 0x02
	ReasonDisconnectWithWillMessage           ReasonCode = 0x04
	ReasonNoMatchingSubscribers               ReasonCode = 0x10
	ReasonNoSubscriptionExisted               ReasonCode = 0x11
	ReasonContinueAuthentication              ReasonCode = 0x18
	ReasonReAuthenticate                      ReasonCode = 0x19
	ReasonUnspecifiedError                    ReasonCode = 0x80
	ReasonMalformedPacket                     ReasonCode = 0x81
	ReasonProtocolError                       ReasonCode = 0x82
	ReasonImplementationSpecificError         ReasonCode = 0x83
	ReasonUnsupportedProtocolVersion          ReasonCode = 0x84
	ReasonClientIdentifierInvalid             ReasonCode = 0x85
	ReasonBadUserNameOrPassword               ReasonCode = 0x86
	ReasonNotAuthorized                       ReasonCode = 0x87
	ReasonServerUnavailable                   ReasonCode = 0x88
	ReasonServerBusy                          ReasonCode = 0x89
	ReasonBanned                              ReasonCode = 0x8A
	ReasonServerShuttingDown                  ReasonCode = 0x8B
	ReasonBadAuthenticationMethod             ReasonCode = 0x8C
	ReasonKeepAliveTimeout                    ReasonCode = 0x8D
	ReasonSessionTakenOver                    ReasonCode = 0x8E
	ReasonTopicFilterInvalid                  ReasonCode = 0x8F
	ReasonTopicNameInvalid                    ReasonCode = 0x90
	ReasonPacketIdentifierInUse               ReasonCode = 0x91
	ReasonPacketIdentifierNotFound            ReasonCode = 0x92
	ReasonReceiveMaximumExceeded               ReasonCode = 0x93
	ReasonTopicAliasInvalid                   ReasonCode = 0x94
	ReasonPacketTooLarge                      ReasonCode = 0x95
	ReasonMessageRateTooHigh                  ReasonCode = 0x96
	ReasonQuotaExceeded                       ReasonCode = 0x97
	ReasonAdministrativeAction                ReasonCode = 0x98
	ReasonPayloadFormatInvalid                ReasonCode = 0x99
	ReasonRetainNotSupported                  ReasonCode = 0x9A
	ReasonQoSNotSupported                     ReasonCode = 0x9B
	ReasonUseAnotherServer                    ReasonCode = 0x9C
	ReasonServerMoved                         ReasonCode = 0x9D
	ReasonSharedSubscriptionsNotSupported     ReasonCode = 0x9E
	ReasonConnectionRateExceeded              ReasonCode = 0x9F
	ReasonMaximumConnectTime                  ReasonCode = 0xA0
	ReasonSubscriptionIdentifiersNotSupported ReasonCode = 0xA1
	ReasonWildcardSubscriptionsNotSupported   ReasonCode = 0xA2
)

var reasonNames = map[ReasonCode]string{
	ReasonSuccess:                             "Success",
	ReasonGrantedQoS1:                         "GrantedQoS1",
	ReasonGrantedQoS2:                         "GrantedQoS2",
	ReasonDisconnectWithWillMessage:           "DisconnectWithWillMessage",
	ReasonNoMatchingSubscribers:               "NoMatchingSubscribers",
	ReasonNoSubscriptionExisted:               "NoSubscriptionExisted",
	ReasonContinueAuthentication:              "ContinueAuthentication",
	ReasonReAuthenticate:                      "ReAuthenticate",
	ReasonUnspecifiedError:                    "UnspecifiedError",
	ReasonMalformedPacket:                     "MalformedPacket",
	ReasonProtocolError:                       "ProtocolError",
	ReasonImplementationSpecificError:         "ImplementationSpecificError",
	ReasonUnsupportedProtocolVersion:          "UnsupportedProtocolVersion",
	ReasonClientIdentifierInvalid:             "ClientIdentifierInvalid",
	ReasonBadUserNameOrPassword:               "BadUserNameOrPassword",
	ReasonNotAuthorized:                       "NotAuthorized",
	ReasonServerUnavailable:                   "ServerUnavailable",
	ReasonServerBusy:                          "ServerBusy",
	ReasonBanned:                              "Banned",
	ReasonServerShuttingDown:                  "ServerShuttingDown",
	ReasonBadAuthenticationMethod:             "BadAuthenticationMethod",
	ReasonKeepAliveTimeout:                    "KeepAliveTimeout",
	ReasonSessionTakenOver:                    "SessionTakenOver",
	ReasonTopicFilterInvalid:                  "TopicFilterInvalid",
	ReasonTopicNameInvalid:                    "TopicNameInvalid",
	ReasonPacketIdentifierInUse:               "PacketIdentifierInUse",
	ReasonPacketIdentifierNotFound:            "PacketIdentifierNotFound",
	ReasonReceiveMaximumExceeded:              "ReceiveMaximumExceeded",
	ReasonTopicAliasInvalid:                   "TopicAliasInvalid",
	ReasonPacketTooLarge:                      "PacketTooLarge",
	ReasonMessageRateTooHigh:                  "MessageRateTooHigh",
	ReasonQuotaExceeded:                       "QuotaExceeded",
	ReasonAdministrativeAction:                "AdministrativeAction",
	ReasonPayloadFormatInvalid:                "PayloadFormatInvalid",
	ReasonRetainNotSupported:                  "RetainNotSupported",
	ReasonQoSNotSupported:                     "QoSNotSupported",
	ReasonUseAnotherServer:                    "UseAnotherServer",
	ReasonServerMoved:                         "ServerMoved",
	ReasonSharedSubscriptionsNotSupported:     "SharedSubscriptionsNotSupported",
	ReasonConnectionRateExceeded:              "ConnectionRateExceeded",
	ReasonMaximumConnectTime:                  "MaximumConnectTime",
	ReasonSubscriptionIdentifiersNotSupported: "SubscriptionIdentifiersNotSupported",
	ReasonWildcardSubscriptionsNotSupported:   "WildcardSubscriptionsNotSupported",
}

func (rc ReasonCode) String() string {
	if name, ok := reasonNames[rc]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsError reports whether rc is an error/administrative code (>= 0x80).
// Values below that, including Success (0x00), are not errors.
func (rc ReasonCode) IsError() bool {
	return rc >= 0x80
}

var allReasonCodes = func() map[ReasonCode]bool {
	m := make(map[ReasonCode]bool, len(reasonNames)+2)
	for rc := range reasonNames {
		m[rc] = true
	}
	m[ReasonSuccess] = true
	return m
}()

// KnownReasonCode reports whether b is any defined reason code value.
func KnownReasonCode(b byte) bool {
	return allReasonCodes[ReasonCode(b)]
}

// pubAckReasonCodes is the permitted set for PUBACK and PUBREC, per
// spec.md §4.5.
var pubAckReasonCodes = map[ReasonCode]bool{
	ReasonSuccess:                     true,
	ReasonNoMatchingSubscribers:       true,
	ReasonUnspecifiedError:            true,
	ReasonImplementationSpecificError: true,
	ReasonNotAuthorized:               true,
	ReasonTopicNameInvalid:            true,
	ReasonPacketIdentifierInUse:       true,
	ReasonQuotaExceeded:               true,
	ReasonPayloadFormatInvalid:        true,
}

// pubRelReasonCodes is the permitted set for PUBREL and PUBCOMP.
var pubRelReasonCodes = map[ReasonCode]bool{
	ReasonSuccess:                  true,
	ReasonPacketIdentifierNotFound: true,
}

// ValidPubAckReason reports whether rc is permitted on PUBACK/PUBREC.
func ValidPubAckReason(rc ReasonCode) bool { return pubAckReasonCodes[rc] }

// ValidPubRelReason reports whether rc is permitted on PUBREL/PUBCOMP.
func ValidPubRelReason(rc ReasonCode) bool { return pubRelReasonCodes[rc] }
