package props

import "github.com/sparrowmqtt/mqtt5/wire"

// Set holds the optional properties a single control packet (or a
// CONNECT's will) may carry. Every field corresponds to exactly one MQTT
// property identifier. The struct is shared across packet types to avoid
// thirteen near-identical declarations, and Parse fills in any identifier
// from the table whatever packet the block came from; it does not reject
// properties that do not belong to that packet type. Scalar
// fields are pointers so their presence is distinguishable from the zero
// value; CorrelationData and AuthenticationData use a nil slice for
// "absent" since MQTT binary data has no other natural sentinel.
type Set struct {
	PayloadFormatIndicator *bool
	MessageExpiryInterval  *uint32
	ContentType            *string
	ResponseTopic          *string
	CorrelationData        []byte

	SubscriptionIdentifiers []uint32

	SessionExpiryInterval      *uint32
	AssignedClientIdentifier   *string
	ServerKeepAlive            *uint16
	AuthenticationMethod       *string
	AuthenticationData         []byte
	RequestProblemInformation  *bool
	WillDelayInterval          *uint32
	RequestResponseInformation *bool
	ResponseInformation        *string
	ServerReference            *string
	ReasonString               *string
	ReceiveMaximum             *uint16
	TopicAliasMaximum          *uint16
	TopicAlias                 *uint16
	MaximumQoS                 *byte
	RetainAvailable            *bool

	UserProperties []wire.StringPair

	MaximumPacketSize               *uint32
	WildcardSubscriptionAvailable   *bool
	SubscriptionIdentifierAvailable *bool
	SharedSubscriptionAvailable     *bool
}

// Parse decodes a property block from the front of data into a fresh Set.
// Returns the Set and the number of bytes consumed (including the VBI
// length prefix).
func Parse(data []byte) (Set, int, error) {
	var set Set
	n, err := parseBlock(data, func(id ID, v Value) error {
		return set.assign(id, v)
	})
	if err != nil {
		return Set{}, 0, err
	}
	return set, n, nil
}

// assign routes one decoded (identifier, value) pair into the matching
// field, validating boolean- and enum-coded bytes along the way. This is
// the decoder callback the property-block parse loop hands each property
// to, per packet.
func (s *Set) assign(id ID, v Value) error {
	switch id {
	case PayloadFormatIndicator:
		b, err := decodeBool(v)
		if err != nil {
			return err
		}
		s.PayloadFormatIndicator = &b
	case MessageExpiryInterval:
		u := v.u32
		s.MessageExpiryInterval = &u
	case ContentType:
		str := v.str
		s.ContentType = &str
	case ResponseTopic:
		str := v.str
		s.ResponseTopic = &str
	case CorrelationData:
		s.CorrelationData = v.bin
	case SubscriptionIdentifier:
		s.SubscriptionIdentifiers = append(s.SubscriptionIdentifiers, v.u32)
	case SessionExpiryInterval:
		u := v.u32
		s.SessionExpiryInterval = &u
	case AssignedClientIdentifier:
		str := v.str
		s.AssignedClientIdentifier = &str
	case ServerKeepAlive:
		u := v.u16
		s.ServerKeepAlive = &u
	case AuthenticationMethod:
		str := v.str
		s.AuthenticationMethod = &str
	case AuthenticationData:
		s.AuthenticationData = v.bin
	case RequestProblemInformation:
		b, err := decodeBool(v)
		if err != nil {
			return err
		}
		s.RequestProblemInformation = &b
	case WillDelayInterval:
		u := v.u32
		s.WillDelayInterval = &u
	case RequestResponseInformation:
		b, err := decodeBool(v)
		if err != nil {
			return err
		}
		s.RequestResponseInformation = &b
	case ResponseInformation:
		str := v.str
		s.ResponseInformation = &str
	case ServerReference:
		str := v.str
		s.ServerReference = &str
	case ReasonString:
		str := v.str
		s.ReasonString = &str
	case ReceiveMaximum:
		u := v.u16
		s.ReceiveMaximum = &u
	case TopicAliasMaximum:
		u := v.u16
		s.TopicAliasMaximum = &u
	case TopicAlias:
		u := v.u16
		s.TopicAlias = &u
	case MaximumQoS:
		if v.b > 2 {
			return ErrInvalidPropertyValue
		}
		b := v.b
		s.MaximumQoS = &b
	case RetainAvailable:
		b, err := decodeBool(v)
		if err != nil {
			return err
		}
		s.RetainAvailable = &b
	case UserProperty:
		s.UserProperties = append(s.UserProperties, v.pair)
	case MaximumPacketSize:
		u := v.u32
		s.MaximumPacketSize = &u
	case WildcardSubscriptionAvailable:
		b, err := decodeBool(v)
		if err != nil {
			return err
		}
		s.WildcardSubscriptionAvailable = &b
	case SubscriptionIdentifierAvailable:
		b, err := decodeBool(v)
		if err != nil {
			return err
		}
		s.SubscriptionIdentifierAvailable = &b
	case SharedSubscriptionAvailable:
		b, err := decodeBool(v)
		if err != nil {
			return err
		}
		s.SharedSubscriptionAvailable = &b
	default:
		return ErrUnknownPropertyID
	}
	return nil
}

// Encode serializes the Set to a complete property block (VBI length
// prefix plus content), walking fields in declared order. A Set with no
// properties present serializes as the single byte 0x00.
func (s Set) Encode() ([]byte, error) {
	var body []byte

	appendBool := func(id ID, p *bool) {
		if p == nil {
			return
		}
		var b byte
		if *p {
			b = 1
		}
		body = append(body, byte(id))
		body = append(body, b)
	}
	appendU16 := func(id ID, p *uint16) {
		if p == nil {
			return
		}
		body = append(body, byte(id))
		body = wire.AppendU16(body, *p)
	}
	appendU32 := func(id ID, p *uint32) {
		if p == nil {
			return
		}
		body = append(body, byte(id))
		body = wire.AppendU32(body, *p)
	}
	appendStr := func(id ID, p *string) {
		if p == nil {
			return
		}
		body = append(body, byte(id))
		body = wire.AppendString(body, *p)
	}
	appendBin := func(id ID, b []byte) {
		if b == nil {
			return
		}
		body = append(body, byte(id))
		body = wire.AppendBinary(body, b)
	}

	appendBool(PayloadFormatIndicator, s.PayloadFormatIndicator)
	appendU32(MessageExpiryInterval, s.MessageExpiryInterval)
	appendStr(ContentType, s.ContentType)
	appendStr(ResponseTopic, s.ResponseTopic)
	appendBin(CorrelationData, s.CorrelationData)

	for _, id := range s.SubscriptionIdentifiers {
		body = append(body, byte(SubscriptionIdentifier))
		var err error
		body, err = wire.AppendVarInt(body, id)
		if err != nil {
			return nil, err
		}
	}

	appendU32(SessionExpiryInterval, s.SessionExpiryInterval)
	appendStr(AssignedClientIdentifier, s.AssignedClientIdentifier)
	appendU16(ServerKeepAlive, s.ServerKeepAlive)
	appendStr(AuthenticationMethod, s.AuthenticationMethod)
	appendBin(AuthenticationData, s.AuthenticationData)
	appendBool(RequestProblemInformation, s.RequestProblemInformation)
	appendU32(WillDelayInterval, s.WillDelayInterval)
	appendBool(RequestResponseInformation, s.RequestResponseInformation)
	appendStr(ResponseInformation, s.ResponseInformation)
	appendStr(ServerReference, s.ServerReference)
	appendStr(ReasonString, s.ReasonString)
	appendU16(ReceiveMaximum, s.ReceiveMaximum)
	appendU16(TopicAliasMaximum, s.TopicAliasMaximum)
	appendU16(TopicAlias, s.TopicAlias)

	if s.MaximumQoS != nil {
		body = append(body, byte(MaximumQoS), *s.MaximumQoS)
	}
	appendBool(RetainAvailable, s.RetainAvailable)

	for _, p := range s.UserProperties {
		body = append(body, byte(UserProperty))
		body = wire.AppendStringPair(body, p)
	}

	appendU32(MaximumPacketSize, s.MaximumPacketSize)
	appendBool(WildcardSubscriptionAvailable, s.WildcardSubscriptionAvailable)
	appendBool(SubscriptionIdentifierAvailable, s.SubscriptionIdentifierAvailable)
	appendBool(SharedSubscriptionAvailable, s.SharedSubscriptionAvailable)

	return encodeBlock(body)
}

// IsEmpty reports whether no property has been set.
func (s Set) IsEmpty() bool {
	enc, err := s.Encode()
	return err == nil && len(enc) == 1 && enc[0] == 0x00
}
