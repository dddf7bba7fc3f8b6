package prune

import "strings"

var landmarkRoles = map[string]bool{
	"banner": true, "main": true, "navigation": true, "complementary": true,
	"contentinfo": true, "region": true, "search": true, "form": true,
}

// allowedLandmarks lists, per mode, which landmark roles survive region
// extraction. ModeFull is handled separately (it keeps everything).
var allowedLandmarks = map[string]map[string]bool{
	"act":      {"main": true},
	"browse":   {"main": true, "region": true, "search": true, "form": true, "complementary": true},
	"navigate": {"banner": true, "navigation": true, "main": true, "contentinfo": true},
}

// auxVocab marks a landmark or region as "auxiliary" content (not the
// page's main subject) by its accessible name.
var auxVocab = []string{
	"image", "review", "recommend", "related", "similar", "also viewed", "cookie",
}

// colorVocab marks a generic group as a color-swatch picker, collapsed
// to a single summary line.
var colorVocab = []string{"colors", "couleurs", "farben", "kleuren"}

// descriptionVocab marks a lower-level heading as descriptive chrome,
// dropped in act mode.
var descriptionVocab = []string{
	"about this", "description", "detail", "feature", "specification", "overview",
}

var interactiveRoles = map[string]bool{
	"button": true, "link": true, "textbox": true, "searchbox": true,
	"checkbox": true, "radio": true, "combobox": true, "listbox": true,
	"menuitem": true, "menuitemcheckbox": true, "menuitemradio": true,
	"option": true, "slider": true, "spinbutton": true, "switch": true,
	"tab": true, "treeitem": true,
}

var namedGroupRoles = map[string]bool{
	"radiogroup": true, "tablist": true, "menu": true, "menubar": true,
	"toolbar": true, "listbox": true, "tree": true, "treegrid": true, "grid": true,
}

// wrapperRoles is the set of unnamed structural roles wrapper collapse
// (stage 3) operates on.
var wrapperRoles = map[string]bool{
	"generic": true, "group": true, "list": true, "table": true, "row": true,
	"rowgroup": true, "cell": true, "presentation": true, "none": true,
	"separator": true, "layouttable": true, "layouttablerow": true, "layouttablecell": true,
}

var stockShippingPhrases = []string{
	"in stock", "out of stock", "free shipping", "ships",
}

func containsAny(haystack string, needles []string) bool {
	h := strings.ToLower(haystack)
	for _, n := range needles {
		if strings.Contains(h, n) {
			return true
		}
	}
	return false
}

func containsKeyword(haystack, keywords string) bool {
	if keywords == "" {
		return true
	}
	h := strings.ToLower(haystack)
	for _, kw := range strings.Fields(strings.ToLower(keywords)) {
		if strings.Contains(h, kw) {
			return true
		}
	}
	return false
}
