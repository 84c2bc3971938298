package prompts

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
)

// clipNamePattern matches clip file names like "【开心】蕉蕉蕉.wav".
var clipNamePattern = regexp.MustCompile(`^【(.*?)】(.*)\.wav$`)

// emotionCodes maps the label embedded in clip names to the code used in
// generated prompt file names. Unlisted labels map to "unknown".
var emotionCodes = map[string]string{
	"中立": "neutral",
	"开心": "happy",
	"生气": "angry",
	"难过": "sad",
	"吃惊": "surprise",
	"恐惧": "fear",
	"厌恶": "disgust",
	"其他": "other",
}

const (
	// voiceLanguageLabel is the middle segment of a well-formed voice folder name.
	voiceLanguageLabel = "中文"
	// promptLanguageCode prefixes every generated prompt file name.
	promptLanguageCode = "zh"
)

// Clip is one reference recording found in the source tree.
type Clip struct {
	Path    string
	Voice   string
	Emotion string
	RefText string
}

// PromptFileName returns the file name the generated prompt is stored under.
func (c Clip) PromptFileName() string {
	return fmt.Sprintf("%s-%s-%s.pt", promptLanguageCode, c.Voice, c.Emotion)
}

// Scan walks the source tree and returns every parseable clip plus the
// relative paths of WAV files whose names did not match the expected format.
func Scan(root string) ([]Clip, []string, error) {
	var clips []Clip
	var skipped []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".wav") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		match := clipNamePattern.FindStringSubmatch(d.Name())
		if match == nil {
			skipped = append(skipped, rel)
			return nil
		}

		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) < 2 {
			// Clips must live inside a voice folder.
			skipped = append(skipped, rel)
			return nil
		}

		emotion, ok := emotionCodes[match[1]]
		if !ok {
			emotion = "unknown"
		}

		clips = append(clips, Clip{
			Path:    path,
			Voice:   voiceName(parts[0]),
			Emotion: emotion,
			RefText: match[2],
		})
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scan clips in %s: %w", root, err)
	}
	return clips, skipped, nil
}

// voiceName derives the "<series>_<name>" voice identifier from a folder
// name like "星穹铁道-中文-蕉授". Folders in other shapes fall back to the
// whole name with hyphens replaced.
func voiceName(folder string) string {
	parts := strings.Split(folder, "-")
	if len(parts) >= 3 && parts[1] == voiceLanguageLabel {
		return parts[0] + "_" + parts[2]
	}
	return strings.ReplaceAll(folder, "-", "_")
}
