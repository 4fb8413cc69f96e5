package board

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/lichcore/dominion/internal/domain"
)

// fakeMeta is an in-memory repository.Meta implementation.
type fakeMeta struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeMeta() *fakeMeta {
	return &fakeMeta{values: make(map[string]string)}
}

func (f *fakeMeta) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeMeta) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

func (f *fakeMeta) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

// fakeMessenger keeps a live message map and records every operation so
// tests can assert on the exact reconciliation traffic.
type fakeMessenger struct {
	mu     sync.Mutex
	nextID int
	live   map[string]Page

	sends   []string
	edits   []string
	deletes []string

	failSend bool
	failEdit bool
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{live: make(map[string]Page)}
}

func (f *fakeMessenger) FetchMessage(_ context.Context, _, messageID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.live[messageID]
	return ok, nil
}

func (f *fakeMessenger) SendPage(_ context.Context, _ string, page Page) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSend {
		return "", errors.New("send failed")
	}
	f.nextID++
	id := fmt.Sprintf("msg-%d", f.nextID)
	f.live[id] = page
	f.sends = append(f.sends, id)
	return id, nil
}

func (f *fakeMessenger) EditPage(_ context.Context, _, messageID string, page Page) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failEdit {
		return errors.New("edit failed")
	}
	if _, ok := f.live[messageID]; !ok {
		return errors.New("unknown message")
	}
	f.live[messageID] = page
	f.edits = append(f.edits, messageID)
	return nil
}

func (f *fakeMessenger) DeletePage(_ context.Context, _, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.live, messageID)
	f.deletes = append(f.deletes, messageID)
	return nil
}

func (f *fakeMessenger) drop(messageID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.live, messageID)
}

func (f *fakeMessenger) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = nil
	f.edits = nil
	f.deletes = nil
}

// fakeRoster resolves every user as a plain mention unless listed in gone.
type fakeRoster struct {
	gone  map[string]bool
	ranks map[string]string
}

func newFakeRoster() *fakeRoster {
	return &fakeRoster{gone: make(map[string]bool), ranks: make(map[string]string)}
}

func (f *fakeRoster) ResolveDisplay(userID string) (string, bool) {
	if f.gone[userID] {
		return "", false
	}
	return "<@" + userID + ">", true
}

func (f *fakeRoster) ResolveRankLabel(userID, profession string) string {
	if rank, ok := f.ranks[userID+"/"+profession]; ok {
		return rank
	}
	return profession
}

// fakeAssignments is an in-memory repository.Assignment implementation.
type fakeAssignments struct {
	mu       sync.Mutex
	snapshot domain.AssignmentSnapshot
}

func newFakeAssignments(snapshot domain.AssignmentSnapshot) *fakeAssignments {
	if snapshot == nil {
		snapshot = make(domain.AssignmentSnapshot)
	}
	return &fakeAssignments{snapshot: snapshot}
}

func (f *fakeAssignments) Assign(_ context.Context, userID, profession string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshot[userID] = append(f.snapshot[userID], profession)
	return nil
}

func (f *fakeAssignments) Unassign(_ context.Context, userID, profession string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.snapshot[userID][:0]
	for _, p := range f.snapshot[userID] {
		if p != profession {
			kept = append(kept, p)
		}
	}
	f.snapshot[userID] = kept
	return nil
}

func (f *fakeAssignments) RemoveUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.snapshot, userID)
	return nil
}

func (f *fakeAssignments) FetchAll(_ context.Context) (domain.AssignmentSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(domain.AssignmentSnapshot, len(f.snapshot))
	for k, v := range f.snapshot {
		out[k] = append([]string(nil), v...)
	}
	return out, nil
}

func (f *fakeAssignments) CountByProfession(_ context.Context, profession string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, professions := range f.snapshot {
		for _, p := range professions {
			if p == profession {
				count++
			}
		}
	}
	return count, nil
}

// fakeLoadouts is an in-memory repository.Loadout implementation.
type fakeLoadouts struct {
	mu          sync.Mutex
	tools       domain.ToolSnapshot
	armor       domain.ArmorSnapshot
	accessories map[string]domain.AccessorySnapshot
}

func newFakeLoadouts() *fakeLoadouts {
	return &fakeLoadouts{
		tools:       make(domain.ToolSnapshot),
		armor:       make(domain.ArmorSnapshot),
		accessories: make(map[string]domain.AccessorySnapshot),
	}
}

func (f *fakeLoadouts) UpsertTool(_ context.Context, userID, tool string, loadout domain.Loadout) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tools[userID] == nil {
		f.tools[userID] = make(map[string]domain.Loadout)
	}
	f.tools[userID][tool] = loadout
	return nil
}

func (f *fakeLoadouts) DeleteTool(_ context.Context, userID, tool string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tools[userID], tool)
	return nil
}

func (f *fakeLoadouts) FetchAllTools(_ context.Context) (domain.ToolSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(domain.ToolSnapshot, len(f.tools))
	for userID, byTool := range f.tools {
		out[userID] = make(map[string]domain.Loadout, len(byTool))
		for tool, loadout := range byTool {
			out[userID][tool] = loadout
		}
	}
	return out, nil
}

func (f *fakeLoadouts) UpsertArmor(_ context.Context, userID string, key domain.ArmorKey, loadout domain.Loadout) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.armor[userID] == nil {
		f.armor[userID] = make(map[domain.ArmorKey]domain.Loadout)
	}
	f.armor[userID][key] = loadout
	return nil
}

func (f *fakeLoadouts) DeleteArmor(_ context.Context, userID string, key domain.ArmorKey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.armor[userID], key)
	return nil
}

func (f *fakeLoadouts) FetchAllArmor(_ context.Context) (domain.ArmorSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(domain.ArmorSnapshot, len(f.armor))
	for userID, slots := range f.armor {
		out[userID] = make(map[domain.ArmorKey]domain.Loadout, len(slots))
		for key, loadout := range slots {
			out[userID][key] = loadout
		}
	}
	return out, nil
}

func (f *fakeLoadouts) UpsertAccessory(_ context.Context, userID, kind string, tier int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.accessories[kind] == nil {
		f.accessories[kind] = make(domain.AccessorySnapshot)
	}
	f.accessories[kind][userID] = tier
	return nil
}

func (f *fakeLoadouts) DeleteAccessory(_ context.Context, userID, kind string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.accessories[kind], userID)
	return nil
}

func (f *fakeLoadouts) FetchAccessories(_ context.Context, kind string) (domain.AccessorySnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(domain.AccessorySnapshot, len(f.accessories[kind]))
	for userID, tier := range f.accessories[kind] {
		out[userID] = tier
	}
	return out, nil
}

func (f *fakeLoadouts) RemoveUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tools, userID)
	delete(f.armor, userID)
	for _, byUser := range f.accessories {
		delete(byUser, userID)
	}
	return nil
}
