package sites

import (
	"regexp"
	"strings"
)

// knifeTypes drives unskinned-knife detection. Matching is substring
// containment, so catalog names must avoid partial overlaps between
// entries ("Classic Knife" vs a future bare "Knife" variant would both
// match); downstream pricing depends on this matching staying as-is.
var knifeTypes = []string{
	"Bayonet", "Flip Knife", "Gut Knife", "Karambit", "M9 Bayonet", "Huntsman Knife",
	"Falchion Knife", "Bowie Knife", "Butterfly Knife", "Shadow Daggers", "Navaja Knife",
	"Stiletto Knife", "Ursus Knife", "Talon Knife", "Paracord Knife", "Survival Knife",
	"Nomad Knife", "Skeleton Knife", "Classic Knife", "Kukri Knife",
}

// agentNames is the roster of agent characters. CSGORoll reports the
// agent as the item type (exact match); CSGOEmpire folds it into the
// item name with an optional " | <suffix>" tail (prefix match).
var agentNames = []string{
	"Number K",
	"Sir Bloody Miami Darryl",
	"Sir Bloody Darryl Royale",
	"Special Agent Ava",
	"'The Doctor' Romanov",
	"Lt. Commander Ricksaw",
	"Sir Bloody Skullhead Darryl",
	"Bloody Darryl The Strapped",
	"Operator",
	"Sir Bloody Silent Darryl",
	"Getaway Sally",
	"Safecracker Voltzmann",
	"Michael Syfers",
	"3rd Commando Company",
	"Sir Bloody Loudmouth Darryl",
	"Ground Rebel",
	"Elite Trapper Solman",
	"Cmdr. Frank 'Wet Sox' Baroud",
	"Markus Delrow",
	"Vypa Sista of the Revolution",
	"The Elite Mr. Muhlik",
	"Seal Team 6 Soldier",
	"Primeiro Tenente",
	"Blackwolf",
	"Osiris",
	"Rezan The Ready",
	"Little Kev",
	"B Squadron Officer",
	"Chem-Haz Capitaine",
	"Buckshot",
	"'Two Times' McCoy",
	"Maximus",
	"Lieutenant Rex Krikey",
	"Prof. Shahmat",
	"'Medium Rare' Crasswater",
	"Cmdr. Mae 'Dead Cold' Jamison",
	"Enforcer",
	"D Squadron Officer",
	"Dragomir",
	"Trapper Aggressor",
	"Arno The Overgrown",
	"1st Lieutenant Farlow",
	"Chef d'Escadron Rouchard",
	"Chem-Haz Specialist",
	"Soldier",
	"Trapper",
	"Slingshot",
	"Cmdr. Davida 'Goggles' Fernandez",
	"Street Soldier",
}

// agentPrefixRegex matches an item name that starts with a roster agent
// followed by end-of-string or a pipe separator.
var agentPrefixRegex = buildAgentPrefixRegex()

func buildAgentPrefixRegex() *regexp.Regexp {
	quoted := make([]string, len(agentNames))
	for i, name := range agentNames {
		quoted[i] = regexp.QuoteMeta(name)
	}
	return regexp.MustCompile(`^(` + strings.Join(quoted, "|") + `)(\s*\|\s*|$)`)
}

var specialPhases = []string{
	"Emerald", "Black Pearl", "Ruby", "Sapphire",
	"Phase 1", "Phase 2", "Phase 3", "Phase 4",
}

func containsKnifeType(s string) bool {
	for _, k := range knifeTypes {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func isRosterAgent(itemType string) bool {
	for _, name := range agentNames {
		if itemType == name {
			return true
		}
	}
	return false
}

func isSpecialPhase(phase *string) bool {
	if phase == nil {
		return false
	}
	for _, p := range specialPhases {
		if strings.Contains(*phase, p) {
			return true
		}
	}
	return false
}
