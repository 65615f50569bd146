package realtimetest

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gs2io/gs2-realtime-go/client/internal/types"
)

var (
	errNotFound = fmt.Errorf("not found")
	errConflict = fmt.Errorf("already exists")
)

// store is the in-memory state of the fake backend.
type store struct {
	mu         sync.Mutex
	ownerID    string
	readyAfter int
	nextPort   int
	pools      map[string]*types.GatheringPool
	gatherings map[string]map[string]*gatheringState
}

type gatheringState struct {
	g     types.Gathering
	port  int
	polls int
}

func newStore(ownerID string, readyAfter int) *store {
	return &store{
		ownerID:    ownerID,
		readyAfter: readyAfter,
		nextPort:   10000,
		pools:      make(map[string]*types.GatheringPool),
		gatherings: make(map[string]map[string]*gatheringState),
	}
}

func (s *store) createPool(name string, description *string) (types.GatheringPool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pools[name]; ok {
		return types.GatheringPool{}, errConflict
	}
	p := &types.GatheringPool{
		GatheringPoolID: "grn:realtime:gatheringPool:" + name,
		OwnerID:         s.ownerID,
		Name:            name,
		CreateAt:        time.Now().UnixMilli(),
	}
	if description != nil {
		p.Description = *description
	}
	s.pools[name] = p
	s.gatherings[name] = make(map[string]*gatheringState)
	return *p, nil
}

func (s *store) pool(name string) (types.GatheringPool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pools[name]
	if !ok {
		return types.GatheringPool{}, errNotFound
	}
	return *p, nil
}

func (s *store) updatePool(name string, description *string) (types.GatheringPool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pools[name]
	if !ok {
		return types.GatheringPool{}, errNotFound
	}
	if description != nil {
		p.Description = *description
	}
	return *p, nil
}

func (s *store) deletePool(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pools[name]; !ok {
		return errNotFound
	}
	delete(s.pools, name)
	delete(s.gatherings, name)
	return nil
}

func (s *store) listPools() []types.GatheringPool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.GatheringPool, 0, len(s.pools))
	for _, p := range s.pools {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *store) createGathering(pool, name string, userIDs types.UserIDList) (types.Gathering, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.gatherings[pool]
	if !ok {
		return types.Gathering{}, errNotFound
	}
	if name == "" {
		name = uuid.NewString()
	}
	if _, ok := gs[name]; ok {
		return types.Gathering{}, errConflict
	}
	st := &gatheringState{g: types.Gathering{
		GatheringID: "grn:realtime:gathering:" + pool + ":" + name,
		OwnerID:     s.ownerID,
		Name:        name,
		HostID:      "host-" + uuid.NewString()[:8],
		Secret:      strings.ReplaceAll(uuid.NewString(), "-", ""),
		UserIDs:     userIDs,
		CreateAt:    time.Now().UnixMilli(),
	}}
	s.nextPort++
	st.port = s.nextPort
	if s.readyAfter == 0 {
		s.assignAddress(st)
	}
	gs[name] = st
	return st.g, nil
}

// assignAddress simulates the game server finishing its boot.
func (s *store) assignAddress(st *gatheringState) {
	st.g.IPAddress = "127.0.0.1"
	st.g.Port = st.port
}

func (s *store) gathering(pool, name string) (types.Gathering, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.gatherings[pool]
	if !ok {
		return types.Gathering{}, errNotFound
	}
	st, ok := gs[name]
	if !ok {
		return types.Gathering{}, errNotFound
	}
	st.polls++
	if !st.g.Ready() && st.polls >= s.readyAfter {
		s.assignAddress(st)
	}
	return st.g, nil
}

func (s *store) deleteGathering(pool, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.gatherings[pool]
	if !ok {
		return errNotFound
	}
	if _, ok := gs[name]; !ok {
		return errNotFound
	}
	delete(gs, name)
	return nil
}

func (s *store) listGatherings(pool string) ([]types.Gathering, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.gatherings[pool]
	if !ok {
		return nil, errNotFound
	}
	out := make([]types.Gathering, 0, len(gs))
	for _, st := range gs {
		out = append(out, st.g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
