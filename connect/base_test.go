package connect_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/connbuild/connect"
	"github.com/katalvlaran/connbuild/connstore"
	"github.com/katalvlaran/connbuild/nodes"
	"github.com/katalvlaran/connbuild/rngsvc"
	"github.com/katalvlaran/connbuild/vprt"
	"github.com/stretchr/testify/require"
)

func newTestCollaborators(t *testing.T, numThreads int) (connect.Collaborators, *connstore.Store) {
	t.Helper()
	models := vprt.NewModelRegistry()
	models.RegisterModel("static_synapse", nil, false)
	store := connstore.NewStore()
	vps, err := vprt.NewManager(numThreads, 1)
	require.NoError(t, err)
	loc := vprt.NewLocation(vps)
	rngs := rngsvc.NewFactory(42, numThreads)

	return connect.Collaborators{Models: models, Store: store, Location: loc, VPs: vps, RNGs: rngs}, store
}

func TestNewBase_RequiresSynapseSpec(t *testing.T) {
	collab, _ := newTestCollaborators(t, 1)
	sources, err := nodes.NewCollection([]nodes.ID{1, 2})
	require.NoError(t, err)

	_, err = connect.NewBase(sources, sources, nil, collab)
	require.ErrorIs(t, err, connect.ErrBadProperty)
}

func TestNewBase_UnknownSynapseModel(t *testing.T) {
	collab, _ := newTestCollaborators(t, 1)
	sources, err := nodes.NewCollection([]nodes.ID{1, 2})
	require.NoError(t, err)

	_, err = connect.NewBase(sources, sources, []map[string]any{{"synapse_model": "does_not_exist"}}, collab)
	require.ErrorIs(t, err, connect.ErrUnknownSynapseType)
}

func TestNewBase_StructuralPlasticityRequiresSingleSynapse(t *testing.T) {
	collab, _ := newTestCollaborators(t, 1)
	sources, err := nodes.NewCollection([]nodes.ID{1, 2})
	require.NoError(t, err)

	specs := []map[string]any{
		{"synapse_model": "static_synapse", "pre_synaptic_element": "Axon", "post_synaptic_element": "Den"},
		{"synapse_model": "static_synapse"},
	}
	_, err = connect.NewBase(sources, sources, specs, collab)
	require.ErrorIs(t, err, connect.ErrKernelException)
}

func TestNewBase_StructuralPlasticityEnablesElementCounters(t *testing.T) {
	collab, _ := newTestCollaborators(t, 1)
	sources, err := nodes.NewCollection([]nodes.ID{1, 2})
	require.NoError(t, err)

	specs := []map[string]any{
		{"synapse_model": "static_synapse", "pre_synaptic_element": "Axon", "post_synaptic_element": "Den"},
	}
	b, err := connect.NewBase(sources, sources, specs, collab)
	require.NoError(t, err)
	require.True(t, b.UseStructuralPlasticity)
	require.NotNil(t, b.Elements())
	require.Equal(t, "Axon", b.PreElementName)
	require.Equal(t, "Den", b.PostElementName)
}

// fakeRule is a minimal connect.Rule used to exercise Base.Connect/
// Disconnect dispatch and the make_symmetric replay without a real
// strategy.
type fakeRule struct {
	supportsSymmetric bool
	createsSymmetric  bool
	connectCalls      int
	disconnectCalls   int
	sawSources        []nodes.ID
	err               error
}

func (f *fakeRule) Name() string                     { return "fake" }
func (f *fakeRule) SupportsSymmetric() bool           { return f.supportsSymmetric }
func (f *fakeRule) CreatesSymmetricConnections() bool { return f.createsSymmetric }

func (f *fakeRule) Connect(b *connect.Base) error {
	f.connectCalls++
	f.sawSources = append(f.sawSources, b.Sources.IDs()...)
	return f.err
}

func (f *fakeRule) Disconnect(b *connect.Base) error {
	f.disconnectCalls++
	return f.err
}

func TestBase_Connect_NoSymmetrizationByDefault(t *testing.T) {
	collab, _ := newTestCollaborators(t, 1)
	sources, err := nodes.NewCollection([]nodes.ID{1, 2})
	require.NoError(t, err)

	b, err := connect.NewBase(sources, sources, []map[string]any{{"synapse_model": "static_synapse"}}, collab)
	require.NoError(t, err)

	rule := &fakeRule{supportsSymmetric: true}
	require.NoError(t, b.Connect(rule))
	require.Equal(t, 1, rule.connectCalls)
}

func TestBase_Connect_MakeSymmetricReplaysWithSwappedEndpoints(t *testing.T) {
	collab, _ := newTestCollaborators(t, 1)
	sources, err := nodes.NewCollection([]nodes.ID{1, 2})
	require.NoError(t, err)
	targets, err := nodes.NewCollection([]nodes.ID{3, 4})
	require.NoError(t, err)

	b, err := connect.NewBase(sources, targets, []map[string]any{{"synapse_model": "static_synapse"}}, collab, connect.WithMakeSymmetric(true))
	require.NoError(t, err)

	rule := &fakeRule{supportsSymmetric: true}
	require.NoError(t, b.Connect(rule))
	require.Equal(t, 2, rule.connectCalls)

	// First pass saw sources {1,2}; replay pass saw swapped sources {3,4}.
	require.Contains(t, rule.sawSources, nodes.ID(1))
	require.Contains(t, rule.sawSources, nodes.ID(3))

	// Endpoints are restored after the replay.
	require.Equal(t, sources, b.Sources)
	require.Equal(t, targets, b.Targets)
}

func TestBase_Connect_MakeSymmetricRejectedByUnsupportingRule(t *testing.T) {
	collab, _ := newTestCollaborators(t, 1)
	sources, err := nodes.NewCollection([]nodes.ID{1, 2})
	require.NoError(t, err)

	b, err := connect.NewBase(sources, sources, []map[string]any{{"synapse_model": "static_synapse"}}, collab, connect.WithMakeSymmetric(true))
	require.NoError(t, err)

	rule := &fakeRule{supportsSymmetric: false}
	err = b.Connect(rule)
	require.ErrorIs(t, err, connect.ErrNotImplemented)
	require.Equal(t, 0, rule.connectCalls)
}

func TestBase_Disconnect_StructuralPlasticityRejected(t *testing.T) {
	collab, _ := newTestCollaborators(t, 1)
	sources, err := nodes.NewCollection([]nodes.ID{1, 2})
	require.NoError(t, err)

	specs := []map[string]any{
		{"synapse_model": "static_synapse", "pre_synaptic_element": "Axon", "post_synaptic_element": "Den"},
	}
	b, err := connect.NewBase(sources, sources, specs, collab)
	require.NoError(t, err)

	err = b.Disconnect(&fakeRule{})
	require.ErrorIs(t, err, connect.ErrNotImplemented)
}

func TestBase_RunWorkers_FirstThreadErrorWinsByIndex(t *testing.T) {
	collab, _ := newTestCollaborators(t, 4)
	sources, err := nodes.NewCollection([]nodes.ID{1})
	require.NoError(t, err)

	b, err := connect.NewBase(sources, sources, []map[string]any{{"synapse_model": "static_synapse"}}, collab)
	require.NoError(t, err)

	sentinel := errors.New("boom")
	later := errors.New("later")
	err = b.RunWorkers(func(thread int) error {
		switch thread {
		case 2:
			return sentinel
		case 3:
			return later
		}
		return nil
	})
	require.ErrorIs(t, err, sentinel)
}

func TestBase_RunWorkers_RecoversPanics(t *testing.T) {
	collab, _ := newTestCollaborators(t, 2)
	sources, err := nodes.NewCollection([]nodes.ID{1})
	require.NoError(t, err)

	b, err := connect.NewBase(sources, sources, []map[string]any{{"synapse_model": "static_synapse"}}, collab)
	require.NoError(t, err)

	err = b.RunWorkers(func(thread int) error {
		if thread == 0 {
			panic("unexpected")
		}
		return nil
	})
	require.ErrorIs(t, err, connect.ErrWrappedThreadException)
}

func TestBase_SingleConnect_EmitsIntoStore(t *testing.T) {
	collab, store := newTestCollaborators(t, 1)
	sources, err := nodes.NewCollection([]nodes.ID{1, 2})
	require.NoError(t, err)

	b, err := connect.NewBase(sources, sources, []map[string]any{{"synapse_model": "static_synapse", "weight": 2.5}}, collab)
	require.NoError(t, err)

	rng := rngsvc.NewFactory(1, 1).VPSpecificRNG(0)
	err = b.SingleConnect(nodes.ID(1), connect.Handle{ID: nodes.ID(2)}, 0, rng)
	require.NoError(t, err)
	require.Equal(t, 1, store.Count())
}

func TestBase_ChangeConnectedSynapticElements_LocalSideCounts(t *testing.T) {
	collab, _ := newTestCollaborators(t, 1)
	sources, err := nodes.NewCollection([]nodes.ID{1, 2})
	require.NoError(t, err)

	specs := []map[string]any{
		{"synapse_model": "static_synapse", "pre_synaptic_element": "Axon", "post_synaptic_element": "Den"},
	}
	b, err := connect.NewBase(sources, sources, specs, collab)
	require.NoError(t, err)

	local := b.ChangeConnectedSynapticElements(nodes.ID(1), nodes.ID(2), 0, 1)
	require.True(t, local) // single-thread manager: every node is local to thread 0
	require.Equal(t, 1, b.Elements().Pre(nodes.ID(1)))
	require.Equal(t, 1, b.Elements().Post(nodes.ID(2)))
}
