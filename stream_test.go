package http2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamOpenCloseBySelf(t *testing.T) {
	s := NewStream(1, 65535, nil)
	require.Equal(t, StateIdle, s.State())

	s.SetState(StateOpen)
	s.EndStreamSent()
	require.Equal(t, StateHalfClosedLocal, s.State())
	require.False(t, s.IsClosed())

	s.EndStreamRecv()
	require.Equal(t, StateClosed, s.State())
	require.True(t, s.IsClosed())
}

func TestStreamOpenCloseByPeer(t *testing.T) {
	s := NewStream(3, 65535, nil)
	s.SetState(StateOpen)

	s.EndStreamRecv()
	require.Equal(t, StateHalfClosedRemote, s.State())

	s.EndStreamSent()
	require.Equal(t, StateClosed, s.State())
}

func TestStreamWindowCanGoNegativeOnSettingsDelta(t *testing.T) {
	s := NewStream(5, 100, nil)
	s.IncrWindow(-150)
	require.Equal(t, int32(-50), s.Window())

	s.IncrWindow(200)
	require.Equal(t, int32(150), s.Window())
}

func TestStreamsInsertGetDel(t *testing.T) {
	var strms Streams

	strms.Insert(NewStream(5, 0, nil))
	strms.Insert(NewStream(1, 0, nil))
	strms.Insert(NewStream(3, 0, nil))

	require.NotNil(t, strms.Get(3))
	require.Equal(t, uint32(3), strms.Get(3).ID())

	require.Nil(t, strms.Get(7))

	removed := strms.Del(1)
	require.NotNil(t, removed)
	require.Equal(t, uint32(1), removed.ID())
	require.Nil(t, strms.Get(1))
}

func TestSettingsPreservesExplicitZeroValue(t *testing.T) {
	st := AcquireSettings()
	defer ReleaseSettings(st)

	st.SetMaxConcurrentStreams(0)

	v, ok := st.Get(SettingMaxConcurrentStreams)
	require.True(t, ok)
	require.Equal(t, uint32(0), v)
	require.Equal(t, uint32(0), st.MaxConcurrentStreams())
}

func TestSettingsPushDefaultsTrueUntilSet(t *testing.T) {
	st := AcquireSettings()
	defer ReleaseSettings(st)

	require.True(t, st.Push())

	st.SetPush(false)
	require.False(t, st.Push())
}
