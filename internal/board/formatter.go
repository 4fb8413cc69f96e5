package board

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lichcore/dominion/internal/domain"
)

// Roster resolves platform user IDs to display information. The bool on
// ResolveDisplay reports whether the user is currently a known member;
// unknown users are skipped on the board (the membership cache may lag
// behind the database).
type Roster interface {
	ResolveDisplay(userID string) (string, bool)
	// ResolveRankLabel returns the user's rank label for a profession,
	// falling back to the profession name when no rank is known.
	ResolveRankLabel(userID, profession string) string
}

// BuildSections renders one section block per profession, in profession
// display order. Each section is an atomic unit: it is never split across
// pages by the packer.
func BuildSections(assignments domain.AssignmentSnapshot, tools domain.ToolSnapshot, roster Roster) []string {
	// Invert the snapshot so each profession lists its users, sorted for
	// stable output across refreshes.
	byProfession := make(map[string][]string, len(domain.Professions))
	for userID, professions := range assignments {
		for _, p := range professions {
			byProfession[p] = append(byProfession[p], userID)
		}
	}
	for _, users := range byProfession {
		sort.Strings(users)
	}

	sections := make([]string, 0, len(domain.Professions))
	for _, profession := range domain.Professions {
		sections = append(sections, buildSection(profession, byProfession[profession], tools, roster))
	}
	return sections
}

// buildSection renders the block for one profession: a header line plus one
// line per resolvable assigned user, or a placeholder when nobody holds it.
func buildSection(profession string, users []string, tools domain.ToolSnapshot, roster Roster) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### %s", profession)

	tool, hasTool := domain.ProfessionTool[profession]

	written := 0
	for _, userID := range users {
		mention, ok := roster.ResolveDisplay(userID)
		if !ok {
			continue
		}

		rank := roster.ResolveRankLabel(userID, profession)
		line := fmt.Sprintf("- %s – %s", mention, rank)
		if hasTool {
			if loadout, ok := tools[userID][tool]; ok {
				line += fmt.Sprintf(" – %s T%d %s", loadout.Rarity, loadout.Tier, tool)
			}
		}
		sb.WriteString("\n")
		sb.WriteString(line)
		written++
	}

	if written == 0 {
		sb.WriteString("\n")
		sb.WriteString(NoAssignmentsLine)
	}

	return sb.String()
}

// FieldGroupOptions controls the armor field-group layout.
type FieldGroupOptions struct {
	// IncludePlate adds a fourth Plate column to every group.
	IncludePlate bool
}

// FieldsPerGroup returns the fixed field count of one group under these
// options.
func (o FieldGroupOptions) FieldsPerGroup() int {
	if o.IncludePlate {
		return FieldsPerGroup + 1
	}
	return FieldsPerGroup
}

// BuildFieldGroups renders one atomic field group per user appearing in any
// of the armor or accessory snapshots, sorted by user ID for stable paging.
func BuildFieldGroups(armor domain.ArmorSnapshot, accessories map[string]domain.AccessorySnapshot, opts FieldGroupOptions) []FieldGroup {
	userSet := make(map[string]struct{})
	for userID := range armor {
		userSet[userID] = struct{}{}
	}
	for _, snapshot := range accessories {
		for userID := range snapshot {
			userSet[userID] = struct{}{}
		}
	}

	userIDs := make([]string, 0, len(userSet))
	for userID := range userSet {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)

	groups := make([]FieldGroup, 0, len(userIDs))
	for _, userID := range userIDs {
		groups = append(groups, buildFieldGroup(userID, armor[userID], accessories, opts))
	}
	return groups
}

// buildFieldGroup renders one user's identity+accessory field plus one
// field per rendered material.
func buildFieldGroup(userID string, slots map[domain.ArmorKey]domain.Loadout, accessories map[string]domain.AccessorySnapshot, opts FieldGroupOptions) FieldGroup {
	var identity strings.Builder
	fmt.Fprintf(&identity, "<@%s>", userID)
	for _, kind := range domain.AccessoryKinds {
		label := strings.ToUpper(kind[:1]) + kind[1:]
		if tier, ok := accessories[kind][userID]; ok {
			fmt.Fprintf(&identity, "\n%s: T%d", label, tier)
		} else {
			fmt.Fprintf(&identity, "\n%s: %s", label, NoPiecePlaceholder)
		}
	}

	fields := []Field{
		{Name: FieldNameUser, Value: identity.String(), Inline: true},
		{Name: FieldNameCloth, Value: materialLines(slots, "Cloth"), Inline: true},
		{Name: FieldNameLeather, Value: materialLines(slots, "Leather"), Inline: true},
	}
	if opts.IncludePlate {
		fields = append(fields, Field{Name: FieldNamePlate, Value: materialLines(slots, "Plate"), Inline: true})
	}

	return FieldGroup{Fields: fields}
}

// materialLines renders the bullet list for one material, in canonical
// piece order, or the none placeholder when the user has no pieces of it.
func materialLines(slots map[domain.ArmorKey]domain.Loadout, material string) string {
	var lines []string
	for _, piece := range domain.Pieces {
		if loadout, ok := slots[domain.ArmorKey{Material: material, Piece: piece}]; ok {
			lines = append(lines, fmt.Sprintf("• %s: %s T%d", piece, loadout.Rarity, loadout.Tier))
		}
	}
	if len(lines) == 0 {
		return NoPiecePlaceholder
	}
	return strings.Join(lines, "\n")
}
