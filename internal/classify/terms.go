package classify

// termSet pairs a visual type id with the phrases that vote for it. Slices of
// termSet keep declaration order, which decides ties.
type termSet struct {
	id    string
	terms []string
}

var intentTerms = []termSet{
	{"editorial_wash", []string{"editorial", "magazine", "controlled", "sharp subject", "accent", "selective", "subtle", "restrained"}},
	{"contested_boundary", []string{"tension", "between", "both", "neither", "oscillat", "coexist", "compete", "mural", "boundary", "mix"}},
	{"full_dissolution", []string{"loose", "dissolve", "painterly", "watercolor", "abstract", "bloom", "backrun", "complete"}},
	{"ghost_impression", []string{"ghost", "faded", "blueprint", "trace", "skeleton", "palimpsest", "bleach", "dry", "crisp edge"}},
	{"substrate_emergence", []string{"paper", "white space", "negative", "minimal", "restraint", "breath", "ma ", "sparse", "empty"}},
	{"chromatic_flood", []string{"flood", "saturated", "wet", "drip", "pour", "expressionist", "bold", "vivid", "maximum", "intense"}},
}

// hydrologyTerms maps text cues to hydrology state ids. Every category is
// checked in order and a later match replaces an earlier one.
var hydrologyTerms = []termSet{
	{"dry_brush", []string{"dry brush", "dry", "textured", "broken", "scratchy"}},
	{"controlled_wash", []string{"controlled", "even", "smooth", "balanced", "standard"}},
	{"wet_on_dry", []string{"layered", "crisp layer", "hard edge layer", "glazing"}},
	{"wet_on_wet", []string{"wet on wet", "diffuse", "merge", "soft edge", "bloom"}},
	{"flooding", []string{"flood", "drip", "gravity", "pour", "capillary", "run"}},
}

// substrateTerms maps text cues to substrate ids. The first category with a
// match wins.
var substrateTerms = []termSet{
	{"hot_press", []string{"smooth", "fine detail", "illustration"}},
	{"rough", []string{"rough", "texture", "expressive"}},
	{"masa", []string{"japanese", "sumi", "ink wash"}},
	{"yupo", []string{"experimental", "synthetic", "yupo"}},
}

const (
	defaultHydrology = "controlled_wash"
	defaultSubstrate = "cold_press"
)

// Decomposition phrase families. Fragments score 1.0, optical and color cues
// 0.5 each.
var fragmentTerms = []termSet{
	{"editorial_wash", []string{"editorial", "magazine", "controlled", "sharp", "accent", "selective", "restrain", "subtle", "disciplin", "photographic"}},
	{"contested_boundary", []string{"tension", "between", "neither", "oscillat", "coexist", "compete", "boundary", "unresolved", "both", "mural"}},
	{"full_dissolution", []string{"dissolv", "loose", "bloom", "backrun", "granulat", "diffus", "abstract", "painterly", "watercolor", "paper texture"}},
	{"ghost_impression", []string{"ghost", "faded", "blueprint", "palimpsest", "trace", "skeleton", "bleach", "dry", "parchment", "iron-gall"}},
	{"substrate_emergence", []string{"paper", "white space", "negative space", "minimal", "restraint", "breath", "ma ", "sparse", "empty", "unpaint"}},
	{"chromatic_flood", []string{"flood", "saturat", "wet-on-wet", "drip", "capillary", "pour", "expressionist", "bold color", "vivid", "chromatic"}},
}

var opticalTerms = []termSet{
	{"editorial_wash", []string{"matte", "opaque", "photographic"}},
	{"contested_boundary", []string{"mixed", "variable", "halation"}},
	{"full_dissolution", []string{"translucent", "diffuse", "paper matte"}},
	{"ghost_impression", []string{"dry matte", "semi transparent", "no scatter"}},
	{"substrate_emergence", []string{"paper dominant", "zero scatter", "ground"}},
	{"chromatic_flood", []string{"wet satin", "maximum scatter", "saturated"}},
}

var colorTerms = []termSet{
	{"editorial_wash", []string{"neutral", "muted", "editorial"}},
	{"contested_boundary", []string{"warm", "analogous", "amber"}},
	{"full_dissolution", []string{"diluted", "granulation", "paper white"}},
	{"ghost_impression", []string{"faded", "earth", "parchment", "tea"}},
	{"substrate_emergence", []string{"white dominant", "sparse", "chromatic island"}},
	{"chromatic_flood", []string{"saturated", "vivid", "intense", "bright"}},
}

const (
	fragmentWeight = 1.0
	opticalWeight  = 0.5
	colorWeight    = 0.5
)

func lookup(sets []termSet, id string) []string {
	for _, s := range sets {
		if s.id == id {
			return s.terms
		}
	}
	return nil
}
