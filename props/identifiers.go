package props

// ID is an MQTT 5 property identifier.
type ID byte

const (
	PayloadFormatIndicator          ID = 0x01
	MessageExpiryInterval           ID = 0x02
	ContentType                     ID = 0x03
	ResponseTopic                   ID = 0x08
	CorrelationData                 ID = 0x09
	SubscriptionIdentifier          ID = 0x0B
	SessionExpiryInterval           ID = 0x11
	AssignedClientIdentifier        ID = 0x12
	ServerKeepAlive                 ID = 0x13
	AuthenticationMethod            ID = 0x15
	AuthenticationData              ID = 0x16
	RequestProblemInformation       ID = 0x17
	WillDelayInterval               ID = 0x18
	RequestResponseInformation      ID = 0x19
	ResponseInformation             ID = 0x1A
	ServerReference                 ID = 0x1C
	ReasonString                    ID = 0x1F
	ReceiveMaximum                  ID = 0x21
	TopicAliasMaximum               ID = 0x22
	TopicAlias                      ID = 0x23
	MaximumQoS                      ID = 0x24
	RetainAvailable                 ID = 0x25
	UserProperty                    ID = 0x26
	MaximumPacketSize               ID = 0x27
	WildcardSubscriptionAvailable   ID = 0x28
	SubscriptionIdentifierAvailable ID = 0x29
	SharedSubscriptionAvailable     ID = 0x2A
)

// spec describes one identifier's wire representation and whether it may
// repeat within a single property block.
type spec struct {
	kind     Kind
	multiple bool
}

var table = map[ID]spec{
	PayloadFormatIndicator:          {KindByte, false},
	MessageExpiryInterval:           {KindU32, false},
	ContentType:                     {KindUTF8, false},
	ResponseTopic:                   {KindUTF8, false},
	CorrelationData:                 {KindBinary, false},
	SubscriptionIdentifier:          {KindVarInt, true},
	SessionExpiryInterval:           {KindU32, false},
	AssignedClientIdentifier:        {KindUTF8, false},
	ServerKeepAlive:                 {KindU16, false},
	AuthenticationMethod:            {KindUTF8, false},
	AuthenticationData:              {KindBinary, false},
	RequestProblemInformation:       {KindByte, false},
	WillDelayInterval:               {KindU32, false},
	RequestResponseInformation:      {KindByte, false},
	ResponseInformation:             {KindUTF8, false},
	ServerReference:                 {KindUTF8, false},
	ReasonString:                    {KindUTF8, false},
	ReceiveMaximum:                  {KindU16, false},
	TopicAliasMaximum:               {KindU16, false},
	TopicAlias:                      {KindU16, false},
	MaximumQoS:                      {KindByte, false},
	RetainAvailable:                 {KindByte, false},
	UserProperty:                    {KindUTF8Pair, true},
	MaximumPacketSize:               {KindU32, false},
	WildcardSubscriptionAvailable:   {KindByte, false},
	SubscriptionIdentifierAvailable: {KindByte, false},
	SharedSubscriptionAvailable:     {KindByte, false},
}

var names = map[ID]string{
	PayloadFormatIndicator:          "PayloadFormatIndicator",
	MessageExpiryInterval:           "MessageExpiryInterval",
	ContentType:                     "ContentType",
	ResponseTopic:                   "ResponseTopic",
	CorrelationData:                 "CorrelationData",
	SubscriptionIdentifier:          "SubscriptionIdentifier",
	SessionExpiryInterval:           "SessionExpiryInterval",
	AssignedClientIdentifier:        "AssignedClientIdentifier",
	ServerKeepAlive:                 "ServerKeepAlive",
	AuthenticationMethod:            "AuthenticationMethod",
	AuthenticationData:              "AuthenticationData",
	RequestProblemInformation:       "RequestProblemInformation",
	WillDelayInterval:               "WillDelayInterval",
	RequestResponseInformation:      "RequestResponseInformation",
	ResponseInformation:             "ResponseInformation",
	ServerReference:                 "ServerReference",
	ReasonString:                    "ReasonString",
	ReceiveMaximum:                  "ReceiveMaximum",
	TopicAliasMaximum:               "TopicAliasMaximum",
	TopicAlias:                      "TopicAlias",
	MaximumQoS:                      "MaximumQoS",
	RetainAvailable:                 "RetainAvailable",
	UserProperty:                    "UserProperty",
	MaximumPacketSize:               "MaximumPacketSize",
	WildcardSubscriptionAvailable:   "WildcardSubscriptionAvailable",
	SubscriptionIdentifierAvailable: "SubscriptionIdentifierAvailable",
	SharedSubscriptionAvailable:     "SharedSubscriptionAvailable",
}

// String returns the property's MQTT name, or "UNKNOWN" for an identifier
// outside the spec table.
func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}
	return "UNKNOWN"
}

func lookup(id ID) (spec, bool) {
	s, ok := table[id]
	return s, ok
}
