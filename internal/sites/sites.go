// Package sites resolves a scraped item to the canonical catalog key
// used for price lookups. Each supported marketplace gets one strategy
// implementing the same ordered decision list; the first matching
// category wins and that order is load-bearing.
package sites

import (
	"fmt"
	"regexp"
	"strings"

	"skin-scout/internal/models"
	"skin-scout/internal/scouterrors"
)

// Kind is the item category a strategy classified a card into.
type Kind int

const (
	KindDefault Kind = iota
	KindNotPainted
	KindSticker
	KindAgent
	KindCase
	KindGraffiti
	KindPin
	KindCharm
	KindCapsule
	KindPass
	KindMusicKit
	KindSpecialPhase
)

// Strategy classifies an item and composes its canonical catalog key.
type Strategy interface {
	Site() models.Site
	Classify(it *models.Item) (Kind, error)
	FormatName(it *models.Item) (string, error)
}

var strategies = map[models.Site]Strategy{
	models.SiteCSGORoll:   rollStrategy{},
	models.SiteCSGOEmpire: empireStrategy{},
}

// ForSite returns the strategy for a marketplace, if one exists.
// csfloat items carry scrape-side classification only and stay
// unresolved here.
func ForSite(site models.Site) (Strategy, bool) {
	s, ok := strategies[site]
	return s, ok
}

// FormatName maps an item to its canonical catalog key. An unknown site
// yields scouterrors.ErrUnresolvedSite and the caller must treat the
// item as unresolved. Malformed attributes surface as errors because
// they indicate a broken scraping contract upstream, not a condition to
// recover from here.
func FormatName(it *models.Item) (string, error) {
	s, ok := ForSite(it.Site)
	if !ok {
		return "", fmt.Errorf("%w: %q", scouterrors.ErrUnresolvedSite, it.Site)
	}
	return s.FormatName(it)
}

// IsValid reports whether an item can be priced at all: it must resolve
// to a non-empty catalog key and must not be a fully failed scrape.
func IsValid(it *models.Item) bool {
	if it.IsNull() || it.IsCompletelyNull() {
		return false
	}
	name, err := FormatName(it)
	return err == nil && name != ""
}

// IsNotPainted detects a bare knife with no skin applied. Every site
// nulls a different subset of fields for those, so detection is
// site-specific.
func IsNotPainted(it *models.Item) bool {
	switch it.Site {
	case models.SiteCSGOEmpire:
		return it.Float == nil &&
			it.ItemType == nil &&
			it.Quality == nil &&
			it.ItemName != nil &&
			containsKnifeType(*it.ItemName)
	case models.SiteCSGORoll, models.SiteCSFloat:
		return it.ItemType != nil &&
			it.ItemName == nil &&
			containsKnifeType(*it.ItemType)
	}
	return false
}

// IsSticker is shared by both sites: the type column carries "Sticker".
func IsSticker(it *models.Item) bool {
	return it.ItemType != nil && strings.Contains(*it.ItemType, "Sticker")
}

// IsSpecialPhase reports a Doppler-style finish sub-variant that must be
// appended to the catalog key.
func IsSpecialPhase(it *models.Item) bool {
	return isSpecialPhase(it.Phase)
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func typeContains(it *models.Item, word string) bool {
	return it.ItemType != nil && strings.Contains(*it.ItemType, word)
}

// rollStrategy covers csgoroll, where the category lives in the item
// type column.
type rollStrategy struct{}

func (rollStrategy) Site() models.Site { return models.SiteCSGORoll }

func (rollStrategy) Classify(it *models.Item) (Kind, error) {
	switch {
	case IsNotPainted(it):
		return KindNotPainted, nil
	case IsSticker(it):
		return KindSticker, nil
	case it.ItemType != nil && isRosterAgent(*it.ItemType):
		return KindAgent, nil
	case typeContains(it, "Case"):
		return KindCase, nil
	case typeContains(it, "Graffiti"):
		return KindGraffiti, nil
	case typeContains(it, "Pin"):
		return KindPin, nil
	case typeContains(it, "Charm"):
		return KindCharm, nil
	case typeContains(it, "Capsule"):
		return KindCapsule, nil
	case typeContains(it, "Pass"):
		return KindPass, nil
	case typeContains(it, "Music Kit"):
		return KindMusicKit, nil
	case IsSpecialPhase(it):
		return KindSpecialPhase, nil
	}
	return KindDefault, nil
}

func (s rollStrategy) FormatName(it *models.Item) (string, error) {
	kind, err := s.Classify(it)
	if err != nil {
		return "", err
	}
	switch kind {
	case KindNotPainted, KindCase, KindPass:
		return str(it.ItemType), nil
	case KindSticker, KindAgent, KindGraffiti, KindPin, KindCharm, KindMusicKit:
		return fmt.Sprintf("%s | %s", str(it.ItemType), str(it.ItemName)), nil
	case KindCapsule:
		return str(it.ItemName), nil
	case KindSpecialPhase:
		return fmt.Sprintf("%s | %s (%s) - %s",
			str(it.ItemType), str(it.ItemName), str(it.Quality), str(it.Phase)), nil
	}
	return fmt.Sprintf("%s | %s (%s)", str(it.ItemType), str(it.ItemName), str(it.Quality)), nil
}

// empireStrategy covers csgoempire, where most categories are folded
// into the item name column.
type empireStrategy struct{}

// empireStickerSplit splits "<Team> - <Event>" on a hyphen or en dash
// surrounded by spaces.
var empireStickerSplit = regexp.MustCompile(`\s[-–]\s`)

func (empireStrategy) Site() models.Site { return models.SiteCSGOEmpire }

func (empireStrategy) Classify(it *models.Item) (Kind, error) {
	switch {
	case IsNotPainted(it):
		return KindNotPainted, nil
	case IsSticker(it):
		return KindSticker, nil
	case it.ItemName != nil && agentPrefixRegex.MatchString(*it.ItemName):
		return KindAgent, nil
	}
	// Every remaining category keys off the item name; a card without
	// one violates the scraping contract.
	if it.ItemName == nil {
		return KindDefault, fmt.Errorf("%w: item name missing for %s", scouterrors.ErrMalformedItem, it.Site)
	}
	name := *it.ItemName
	switch {
	case strings.Contains(name, "Case"):
		return KindCase, nil
	case typeContains(it, "Graffiti"):
		return KindGraffiti, nil
	case empirePinSuffix.MatchString(name):
		return KindPin, nil
	case empireCharmPrefix.MatchString(name):
		return KindCharm, nil
	case strings.Contains(name, "Capsule"):
		return KindCapsule, nil
	case strings.Contains(name, "Pass"):
		return KindPass, nil
	case strings.Contains(name, "Music Kit"):
		return KindMusicKit, nil
	case IsSpecialPhase(it):
		return KindSpecialPhase, nil
	}
	return KindDefault, nil
}

var (
	// Pins end with the standalone word "Pin"; charms begin with "Charm |".
	empirePinSuffix   = regexp.MustCompile(`\bPin$`)
	empireCharmPrefix = regexp.MustCompile(`^Charm\s*\|`)
)

func (s empireStrategy) FormatName(it *models.Item) (string, error) {
	kind, err := s.Classify(it)
	if err != nil {
		return "", err
	}
	switch kind {
	case KindNotPainted:
		return str(it.ItemType), nil
	case KindSticker:
		return empireStickerName(it), nil
	case KindAgent, KindCase, KindPin, KindCharm, KindCapsule, KindPass, KindMusicKit:
		return str(it.ItemName), nil
	case KindGraffiti:
		return fmt.Sprintf("%s | %s (%s)", str(it.ItemType), str(it.ItemName), str(it.Quality)), nil
	case KindSpecialPhase:
		return fmt.Sprintf("%s | %s (%s) - %s",
			str(it.ItemType), str(it.ItemName), str(it.Quality), str(it.Phase)), nil
	}
	return fmt.Sprintf("%s | %s (%s)", str(it.ItemType), str(it.ItemName), str(it.Quality)), nil
}

// empireStickerName reassembles the "<Team> - <Event>" name the site
// shows into the "<Type> | <Team> (<Quality>) | <Event>" catalog form,
// falling back to "<Type> | <Name> (<Quality>)" when the split does not
// yield exactly two parts.
func empireStickerName(it *models.Item) string {
	name := str(it.ItemName)
	qualityPart := ""
	if it.Quality != nil {
		qualityPart = fmt.Sprintf(" (%s)", *it.Quality)
	}
	parts := empireStickerSplit.Split(name, -1)
	if len(parts) == 2 {
		return fmt.Sprintf("%s | %s%s | %s", str(it.ItemType), parts[0], qualityPart, parts[1])
	}
	return fmt.Sprintf("%s | %s%s", str(it.ItemType), name, qualityPart)
}
