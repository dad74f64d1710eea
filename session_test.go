package dialog

import (
	"testing"

	"github.com/emiago/sipdialog/fakes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sdpV1 = "v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\nc=IN IP4 127.0.0.1\r\nt=0 0\r\nm=audio 49170 RTP/AVP 0\r\n"
const sdpV2 = "v=0\r\no=- 1 2 IN IP4 127.0.0.1\r\ns=-\r\nc=IN IP4 127.0.0.1\r\nt=0 0\r\nm=audio 49172 RTP/AVP 0\r\n"

// TestSessionUpdateStart is P6: session_update(start) fires exactly
// once the first time both offer and answer are present.
func TestSessionUpdateStart(t *testing.T) {
	d := &Dialog{}
	notifier := &fakes.Notifier{}

	d.SDPOffer = &SDPExchange{Party: PartyLocal, Source: SourceRequest, SDP: []byte(sdpV1)}
	d.SDPAnswer = &SDPExchange{Party: PartyRemote, Source: SourceResponse, SDP: []byte(sdpV2)}

	updateSession(d, notifier)

	require.Len(t, notifier.SessionEvents, 1)
	assert.Equal(t, SessionEventStart, notifier.SessionEvents[0].Kind)
	assert.True(t, d.MediaStarted)
	assert.Equal(t, []byte(sdpV1), d.LocalSDP)
	assert.Equal(t, []byte(sdpV2), d.RemoteSDP)
	assert.Nil(t, d.SDPOffer)
	assert.Nil(t, d.SDPAnswer)
}

func TestSessionUpdateNoEmissionWhenUnchanged(t *testing.T) {
	d := &Dialog{MediaStarted: true, LocalSDP: []byte(sdpV1), RemoteSDP: []byte(sdpV2)}
	notifier := &fakes.Notifier{}

	d.SDPOffer = &SDPExchange{Party: PartyLocal, SDP: []byte(sdpV1)}
	d.SDPAnswer = &SDPExchange{Party: PartyRemote, SDP: []byte(sdpV2)}

	updateSession(d, notifier)
	assert.Empty(t, notifier.SessionEvents)
}

func TestSessionUpdateEmitsUpdate(t *testing.T) {
	sdpV1Changed := "v=0\r\no=- 1 3 IN IP4 127.0.0.1\r\ns=-\r\nc=IN IP4 127.0.0.1\r\nt=0 0\r\nm=audio 49174 RTP/AVP 0\r\n"
	d := &Dialog{MediaStarted: true, LocalSDP: []byte(sdpV1), RemoteSDP: []byte(sdpV2)}
	notifier := &fakes.Notifier{}

	d.SDPOffer = &SDPExchange{Party: PartyLocal, SDP: []byte(sdpV1Changed)}
	d.SDPAnswer = &SDPExchange{Party: PartyRemote, SDP: []byte(sdpV2)}

	updateSession(d, notifier)
	require.Len(t, notifier.SessionEvents, 1)
	assert.Equal(t, SessionEventUpdate, notifier.SessionEvents[0].Kind)
}

func TestSessionUpdateNoOpWithoutBothSides(t *testing.T) {
	d := &Dialog{}
	notifier := &fakes.Notifier{}
	d.SDPOffer = &SDPExchange{Party: PartyLocal, SDP: []byte(sdpV1)}

	updateSession(d, notifier)
	assert.Empty(t, notifier.SessionEvents)
	assert.False(t, d.MediaStarted)
}
