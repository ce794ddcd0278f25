package prompt

import (
	"fmt"
	"strings"

	"dissolve/internal/taxonomy"
	"dissolve/internal/trajectory"
)

// PresetFrame is a preset keyframe with its prompt text.
type PresetFrame struct {
	trajectory.Keyframe
	Prompt string `json:"prompt"`
}

// PresetSequence is a set of evenly phased prompts for one rhythmic preset.
type PresetSequence struct {
	PresetName    string        `json:"preset_name"`
	Character     string        `json:"character"`
	KeyframeCount int           `json:"keyframe_count"`
	Keyframes     []PresetFrame `json:"keyframes"`
}

// Sequence writes one prompt per keyframe of the named preset's cycle.
func Sequence(store *taxonomy.Store, presetName string, keyframes int, modifier string) (PresetSequence, error) {
	preset, err := store.RhythmicPreset(presetName)
	if err != nil {
		return PresetSequence{}, err
	}
	if keyframes < 1 {
		keyframes = DefaultKeyframes
	}
	kfs, err := trajectory.Keyframes(store, preset, keyframes)
	if err != nil {
		return PresetSequence{}, err
	}

	frames := make([]PresetFrame, len(kfs))
	for i, kf := range kfs {
		vt, _ := store.VisualType(kf.NearestType)
		text := fmt.Sprintf("Keyframe %d/%d — %s: %s. Color: %s.",
			kf.Index, keyframes, vt.Name,
			strings.Join(firstN(vt.Keywords, 2), ". "),
			strings.Join(firstN(vt.ColorAssociations, 2), ", "))
		if modifier != "" {
			text += " " + modifier + "."
		}
		frames[i] = PresetFrame{Keyframe: kf, Prompt: text}
	}

	return PresetSequence{
		PresetName:    presetName,
		Character:     preset.Character,
		KeyframeCount: keyframes,
		Keyframes:     frames,
	}, nil
}
