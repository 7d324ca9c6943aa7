package connstore

import (
	"testing"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/connparam"
	"github.com/katalvlaran/connbuild/nodes"
	"github.com/stretchr/testify/require"
)

func TestStore_ConnectAndCount(t *testing.T) {
	s := NewStore()
	err := s.Connect(nodes.ID(1), connect.Handle{ID: 2}, 0, connect.ModelID(1), nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, s.Count())
	require.True(t, s.HasConnection(nodes.ID(1), nodes.ID(2)))
}

func TestStore_ConnectPreservesAttrs(t *testing.T) {
	s := NewStore()
	attrs := map[string]connparam.Value{"tau": {Kind: connparam.KindDouble, Double: 2.0}}
	err := s.Connect(nodes.ID(1), connect.Handle{ID: 2}, 0, connect.ModelID(1), attrs, nil, nil)
	require.NoError(t, err)

	conns := s.Connections()
	require.Len(t, conns, 1)
	require.Equal(t, 2.0, conns[0].Attrs["tau"].Double)

	attrs["tau"] = connparam.Value{Kind: connparam.KindDouble, Double: 99}
	require.Equal(t, 2.0, conns[0].Attrs["tau"].Double, "store must copy attrs, not alias caller's map")
}

func TestStore_DisconnectRemovesOne(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Connect(nodes.ID(1), connect.Handle{ID: 2}, 0, connect.ModelID(1), nil, nil, nil))
	require.Equal(t, 1, s.Count())

	err := s.Disconnect(nodes.ID(1), connect.Handle{ID: 2}, 0, connect.ModelID(1))
	require.NoError(t, err)
	require.Equal(t, 0, s.Count())
}

func TestStore_DisconnectMissingIsNotError(t *testing.T) {
	s := NewStore()
	err := s.Disconnect(nodes.ID(1), connect.Handle{ID: 2}, 0, connect.ModelID(1))
	require.NoError(t, err)
}

func TestStore_WeightDelayDefaultsToNil(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Connect(nodes.ID(1), connect.Handle{ID: 2}, 0, connect.ModelID(1), nil, nil, nil))
	conns := s.Connections()
	require.Nil(t, conns[0].Weight)
	require.Nil(t, conns[0].Delay)
}
