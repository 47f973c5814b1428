package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparrowmqtt/mqtt5/packet"
)

func TestSubscribeRoundTrip(t *testing.T) {
	s := &Subscribe{
		PacketID: 10,
		Subscriptions: []Subscription{
			{TopicFilter: "a/+", MaxQoS: packet.QoS1, NoLocal: true, RetainHandling: packet.SendIfNew},
			{TopicFilter: "b/#", MaxQoS: packet.QoS2, RetainAsPublished: true},
		},
	}
	encoded, err := s.Encode()
	require.NoError(t, err)
	require.Equal(t, byte(0x82), encoded[0]) // SUBSCRIBE type(8)<<4 | flags(2)

	decoded, _, err := Decode(encoded)
	require.NoError(t, err)
	got := decoded.(*Subscribe)
	require.Equal(t, uint16(10), got.PacketID)
	require.Len(t, got.Subscriptions, 2)
	require.Equal(t, "a/+", got.Subscriptions[0].TopicFilter)
	require.True(t, got.Subscriptions[0].NoLocal)
	require.Equal(t, packet.SendIfNew, got.Subscriptions[0].RetainHandling)
	require.True(t, got.Subscriptions[1].RetainAsPublished)
}

func TestSubscribeEmptyListRejected(t *testing.T) {
	s := &Subscribe{PacketID: 1}
	_, err := s.Encode()
	require.ErrorIs(t, err, packet.ErrEmptySubscribeList)
}

func TestSubscribeEmptyTopicFilterRejected(t *testing.T) {
	s := &Subscribe{PacketID: 1, Subscriptions: []Subscription{{TopicFilter: ""}}}
	_, err := s.Encode()
	require.ErrorIs(t, err, packet.ErrEmptyTopicFilter)
}

func TestSubackRoundTrip(t *testing.T) {
	s := &Suback{PacketID: 10, ReasonCodes: []packet.ReasonCode{packet.ReasonGrantedQoS1, packet.ReasonGrantedQoS2}}
	encoded, err := s.Encode()
	require.NoError(t, err)

	decoded, _, err := Decode(encoded)
	require.NoError(t, err)
	got := decoded.(*Suback)
	require.Equal(t, []packet.ReasonCode{packet.ReasonGrantedQoS1, packet.ReasonGrantedQoS2}, got.ReasonCodes)
}

func TestUnsubscribeRoundTrip(t *testing.T) {
	u := &Unsubscribe{PacketID: 3, TopicFilters: []string{"a/b", "c/d"}}
	encoded, err := u.Encode()
	require.NoError(t, err)
	require.Equal(t, byte(0xA2), encoded[0]) // UNSUBSCRIBE type(10)<<4 | flags(2)

	decoded, _, err := Decode(encoded)
	require.NoError(t, err)
	got := decoded.(*Unsubscribe)
	require.Equal(t, []string{"a/b", "c/d"}, got.TopicFilters)
}

func TestUnsubscribeEmptyListRejected(t *testing.T) {
	u := &Unsubscribe{PacketID: 1}
	_, err := u.Encode()
	require.ErrorIs(t, err, packet.ErrEmptyUnsubscribeList)
}

func TestUnsubackRoundTrip(t *testing.T) {
	u := &Unsuback{PacketID: 3, ReasonCodes: []packet.ReasonCode{packet.ReasonSuccess, packet.ReasonNoSubscriptionExisted}}
	encoded, err := u.Encode()
	require.NoError(t, err)

	decoded, _, err := Decode(encoded)
	require.NoError(t, err)
	got := decoded.(*Unsuback)
	require.Equal(t, []packet.ReasonCode{packet.ReasonSuccess, packet.ReasonNoSubscriptionExisted}, got.ReasonCodes)
}
