// Package prompt renders points in the parameter space as image generation
// prompts: a single composite paragraph, per-category fragments, or a
// keyframe sequence.
package prompt

import (
	"fmt"
	"strings"

	"dissolve/internal/display"
	"dissolve/internal/space"
	"dissolve/internal/taxonomy"
	"dissolve/internal/vocab"
)

// Prompt modes. Unknown modes render as ModeComposite.
const (
	ModeComposite = "composite"
	ModeSplitView = "split_view"
	ModeSequence  = "sequence"
)

// DefaultKeyframes is used when a caller asks for fewer than one keyframe.
const DefaultKeyframes = 4

// SequenceOrigin is the visual type every sequence-mode prompt starts from.
const SequenceOrigin = "editorial_wash"

const descriptionLength = 200

// ParseMode returns the named mode, or ModeComposite.
func ParseMode(mode string) string {
	switch mode {
	case ModeSplitView, ModeSequence:
		return mode
	}
	return ModeComposite
}

// Request selects the point to render. CustomState wins over AttractorID.
type Request struct {
	AttractorID   string
	CustomState   *space.Point
	Mode          string
	StyleModifier string
	KeyframeCount int
}

// CategoryView is one vocabulary category rendered as a prompt fragment.
type CategoryView struct {
	Category       string   `json:"category"`
	PromptFragment string   `json:"prompt_fragment"`
	Descriptors    []string `json:"descriptors"`
}

// Frame is one keyframe of a sequence-mode prompt.
type Frame struct {
	Keyframe       int         `json:"keyframe"`
	T              float64     `json:"t"`
	State          space.Point `json:"state"`
	NearestType    string      `json:"nearest_type"`
	PromptFragment string      `json:"prompt_fragment"`
}

// Result holds whichever fields the selected mode produces.
type Result struct {
	Mode          string         `json:"mode"`
	Prompt        string         `json:"prompt,omitempty"`
	BasePrompt    string         `json:"base_prompt,omitempty"`
	State         *space.Point   `json:"state,omitempty"`
	NearestType   string         `json:"nearest_type,omitempty"`
	Keywords      []string       `json:"keywords,omitempty"`
	CategoryViews []CategoryView `json:"category_views,omitempty"`
	KeyframeCount int            `json:"keyframe_count,omitempty"`
	Keyframes     []Frame        `json:"keyframes,omitempty"`
}

func resolve(store *taxonomy.Store, req Request) (space.Point, error) {
	if req.CustomState != nil {
		return *req.CustomState, nil
	}
	if req.AttractorID != "" {
		return store.ResolvePoint(taxonomy.KindAttractor, req.AttractorID)
	}
	return space.Point{}, &taxonomy.MissingInputError{
		Op:           "attractor_prompt",
		Alternatives: []string{"attractor_id", "custom_state"},
	}
}

// Attractor renders the point named by req in the requested mode.
func Attractor(store *taxonomy.Store, req Request) (Result, error) {
	p, err := resolve(store, req)
	if err != nil {
		return Result{}, err
	}

	nearestID, _ := store.NearestType(p)
	vt, _ := store.VisualType(nearestID)
	base := Composite(vt, p, req.StyleModifier)
	state := p.Round(4)

	switch ParseMode(req.Mode) {
	case ModeSplitView:
		by := vocab.Synthesize(store, p, 1.0).VocabularyByCategory
		views := make([]CategoryView, 0, len(vocab.Categories))
		for _, cat := range vocab.Categories {
			descs := by.Get(cat)
			views = append(views, CategoryView{
				Category:       cat,
				PromptFragment: strings.Join(descs, "; "),
				Descriptors:    descs,
			})
		}
		return Result{Mode: ModeSplitView, BasePrompt: base, CategoryViews: views, State: &state}, nil

	case ModeSequence:
		origin, err := store.Style(SequenceOrigin)
		if err != nil {
			return Result{}, err
		}
		k := req.KeyframeCount
		if k < 1 {
			k = DefaultKeyframes
		}
		frames := make([]Frame, 0, k)
		for i := 0; i < k; i++ {
			t := float64(i) / float64(max(1, k-1))
			fp := space.Interpolate(origin.Center, p, t)
			fid, _ := store.NearestType(fp)
			fvt, _ := store.VisualType(fid)
			frames = append(frames, Frame{
				Keyframe:       i + 1,
				T:              space.Round(t, 3),
				State:          fp.Round(4),
				NearestType:    fid,
				PromptFragment: fmt.Sprintf("Keyframe %d: %s — %s.", i+1, fvt.Name, strings.Join(firstN(fvt.Keywords, 2), ". ")),
			})
		}
		return Result{Mode: ModeSequence, KeyframeCount: k, Keyframes: frames}, nil
	}

	return Result{
		Mode:        ModeComposite,
		Prompt:      base,
		State:       &state,
		NearestType: nearestID,
		Keywords:    vt.Keywords,
	}, nil
}

// Composite builds the single-paragraph prompt for p using vt, normally the
// visual type nearest to p, for its name, description, palette and finish.
func Composite(vt taxonomy.VisualType, p space.Point, modifier string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Digital watercolor treatment in %s mode. ", strings.ToLower(vt.Name))
	fmt.Fprintf(&b, "%s ", display.Truncate(vt.Description, descriptionLength))
	fmt.Fprintf(&b, "Pigment behavior: %s. ", hydrologyDescriptor(p))
	fmt.Fprintf(&b, "Edge character: %s. ", edgeDescriptor(p))
	fmt.Fprintf(&b, "Substrate: %s. ", substrateDescriptor(p))
	fmt.Fprintf(&b, "Anchoring: %s. ", anchorDescriptor(p))
	fmt.Fprintf(&b, "Color palette: %s. ", strings.Join(firstN(vt.ColorAssociations, 3), ", "))
	fmt.Fprintf(&b, "Optical finish: %s, %s, %s.",
		display.Words(vt.Optical.Finish),
		display.Words(vt.Optical.Scatter),
		display.Words(vt.Optical.Transparency))
	if modifier != "" {
		fmt.Fprintf(&b, " Style modifier: %s.", modifier)
	}
	return b.String()
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
