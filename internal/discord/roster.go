package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Default roster cache sizing. Member lookups happen on every board line,
// so the cache is sized for a full guild render.
const (
	rosterCacheSize = 2048
	rosterCacheTTL  = 5 * time.Minute
)

// memberEntry caches one member lookup. Present=false caches a confirmed
// absence so departed members do not trigger repeated REST calls.
type memberEntry struct {
	Present   bool
	RoleNames []string
}

// GuildRoster resolves user IDs against the guild's member list. It backs
// the board formatter's Roster interface and the rank-label convention:
// a role named "<Profession> <Level>" marks a member's rank.
type GuildRoster struct {
	session *discordgo.Session
	guildID string
	cache   *expirable.LRU[string, *memberEntry]

	mu           sync.Mutex
	roleNames    map[string]string
	rolesFetched time.Time
}

// NewGuildRoster creates a new GuildRoster
func NewGuildRoster(session *discordgo.Session, guildID string) *GuildRoster {
	return &GuildRoster{
		session: session,
		guildID: guildID,
		cache:   expirable.NewLRU[string, *memberEntry](rosterCacheSize, nil, rosterCacheTTL),
	}
}

// ResolveDisplay returns the mention for a current member, or false for
// users no longer in the guild.
func (r *GuildRoster) ResolveDisplay(userID string) (string, bool) {
	entry := r.lookup(userID)
	if !entry.Present {
		return "", false
	}
	return "<@" + userID + ">", true
}

// ResolveRankLabel returns the member's highest "<profession> <level>" role
// name, falling back to the bare profession name when they hold none.
func (r *GuildRoster) ResolveRankLabel(userID, profession string) string {
	entry := r.lookup(userID)
	best := 0
	for _, name := range entry.RoleNames {
		if level, ok := parseLevelRole(name, profession); ok && level > best {
			best = level
		}
	}
	if best == 0 {
		return profession
	}
	return fmt.Sprintf("%s %d", profession, best)
}

// Invalidate drops a member's cached entry, forcing a fresh lookup on the
// next board render. Called on role changes and member removal.
func (r *GuildRoster) Invalidate(userID string) {
	r.cache.Remove(userID)
}

// TopHolder returns the member holding the highest level role for a
// profession. ok is false when nobody holds one.
func (r *GuildRoster) TopHolder(ctx context.Context, profession string) (string, int, bool, error) {
	var (
		topID string
		top   int
		found bool
	)
	after := ""
	for {
		members, err := r.session.GuildMembers(r.guildID, after, 1000, discordgo.WithContext(ctx))
		if err != nil {
			return "", 0, false, fmt.Errorf("failed to list guild members: %w", err)
		}
		if len(members) == 0 {
			return topID, top, found, nil
		}
		for _, m := range members {
			for _, roleID := range m.Roles {
				name := r.roleName(roleID)
				if l, match := parseLevelRole(name, profession); match && l > top {
					topID, top, found = m.User.ID, l, true
				}
			}
			after = m.User.ID
		}
		if len(members) < 1000 {
			return topID, top, found, nil
		}
	}
}

// lookup resolves a member through the cache, state, then REST.
func (r *GuildRoster) lookup(userID string) *memberEntry {
	if entry, found := r.cache.Get(userID); found {
		return entry
	}

	member, err := r.session.State.Member(r.guildID, userID)
	if err != nil {
		member, err = r.session.GuildMember(r.guildID, userID)
	}

	entry := &memberEntry{}
	if err == nil && member != nil {
		entry.Present = true
		entry.RoleNames = make([]string, 0, len(member.Roles))
		for _, roleID := range member.Roles {
			if name := r.roleName(roleID); name != "" {
				entry.RoleNames = append(entry.RoleNames, name)
			}
		}
	}
	r.cache.Add(userID, entry)
	return entry
}

// roleName maps a role ID to its name, refreshing the guild role list when
// the cached copy goes stale.
func (r *GuildRoster) roleName(roleID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.roleNames == nil || time.Since(r.rolesFetched) > rosterCacheTTL {
		roles, err := r.session.GuildRoles(r.guildID)
		if err == nil {
			r.roleNames = make(map[string]string, len(roles))
			for _, role := range roles {
				r.roleNames[role.ID] = role.Name
			}
			r.rolesFetched = time.Now()
		}
	}
	return r.roleNames[roleID]
}

// RoleByName returns the guild role with the exact name, or nil.
func (r *GuildRoster) RoleByName(ctx context.Context, name string) (*discordgo.Role, error) {
	roles, err := r.session.GuildRoles(r.guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list guild roles: %w", err)
	}
	for _, role := range roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

// parseLevelRole matches role names of the form "<profession> <level>" for
// the given profession, case-insensitively on the profession part.
func parseLevelRole(name, profession string) (int, bool) {
	rest, found := strings.CutPrefix(strings.ToLower(name), strings.ToLower(profession)+" ")
	if !found {
		return 0, false
	}
	level, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || level <= 0 {
		return 0, false
	}
	return level, true
}
