package export

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/alexisbeaulieu97/toastlab/internal/audio"
	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	"github.com/alexisbeaulieu97/toastlab/internal/icons"
	"github.com/alexisbeaulieu97/toastlab/internal/preview"
)

// Kinds whose icon goes into the host icons prop, in output order.
var hostIconKinds = []toast.Kind{
	toast.KindSuccess,
	toast.KindError,
	toast.KindWarning,
	toast.KindInfo,
	toast.KindLoading,
}

// The generated code uses JSX double braces, so actions use [[ ]].
var snippetTemplate = template.Must(template.New("snippet").
	Delims("[[", "]]").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(`import { Toaster, toast } from 'sonner';
[[- if .Imports]]
import { [[join .Imports ", "]] } from 'lucide-react';
[[- end]]
[[- with .Sound]]

// Interaction sound ([[.Preset]] preset)
const playToastSound = (): void => {
  if (typeof window === 'undefined') return;
  const AudioContextClass = window.AudioContext || (window as unknown as { webkitAudioContext: typeof AudioContext }).webkitAudioContext;
  const ctx: AudioContext = new AudioContextClass();
  const volume = [[.Volume]];
  const playTone = (type: OscillatorType, freq: number, start: number, duration: number, v: number): void => {
    const osc: OscillatorNode = ctx.createOscillator();
    const g: GainNode = ctx.createGain();
    osc.type = type;
    osc.frequency.setValueAtTime(freq, start);
    g.gain.setValueAtTime(0, start);
    g.gain.linearRampToValueAtTime(v * volume, start + [[.Attack]]);
    g.gain.exponentialRampToValueAtTime([[.Floor]], start + duration);
    osc.connect(g);
    g.connect(ctx.destination);
    osc.start(start);
    osc.stop(start + duration);
  };
[[- range .Tones]]
  playTone('[[.Wave]]', [[.Frequency]], [[.Start]], [[.Duration]], [[.Gain]]);
[[- end]]
};
[[- end]]

// 1. Mount the Toaster once, usually in your root layout.
export function ToasterSetup() {
  return (
    <Toaster
      position="[[.Position]]"
      expand={[[.Expand]]}
      closeButton={[[.CloseButton]]}
      duration={[[.Duration]]}
      offset="[[.Offset]]px"
      gap={[[.Gap]]}
      theme="[[.Theme]]"
[[- if .Icons]]
      icons={{
[[- range .Icons]]
        [[.Kind]]: [[.Code]],
[[- end]]
      }}
[[- end]]
      toastOptions={{
        className: '[[.ClassName]]',
      }}
    />
  );
}

// 2. Trigger a notification anywhere in your app.
const notify = (): void => {
[[- if .Sound]]
  playToastSound();
[[- end]]
  toast.success('[[.SuccessTitle]]', {
    description: '[[.Description]]',
  });
};
[[- with .DefaultIcon]]

const notifyDefault = (): void => {
[[- if $.Sound]]
  playToastSound();
[[- end]]
  toast('[[$.DefaultTitle]]', {
    description: '[[$.Description]]',
    icon: [[.]],
  });
};
[[- end]]
`))

type snippetData struct {
	Imports      []string
	Sound        *soundData
	Position     toast.Position
	Expand       bool
	CloseButton  bool
	Duration     int
	Offset       int
	Gap          int
	Theme        toast.PreviewMode
	Icons        []iconEntry
	ClassName    string
	SuccessTitle string
	DefaultTitle string
	Description  string
	DefaultIcon  string
}

type soundData struct {
	Preset toast.SoundPreset
	Volume string
	Attack string
	Floor  string
	Tones  []toneData
}

type toneData struct {
	Wave      audio.Waveform
	Frequency string
	Start     string
	Duration  string
	Gain      string
}

type iconEntry struct {
	Kind toast.Kind
	Code string
}

// importSet keeps component names in order of first use.
type importSet struct {
	names []string
	seen  map[string]bool
}

func (s *importSet) add(name string) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[name] {
		return
	}
	s.seen[name] = true
	s.names = append(s.names, name)
}

func newSnippetData(cfg toast.Config) snippetData {
	var imports importSet
	data := snippetData{
		Position:     cfg.Position,
		Expand:       cfg.Expand,
		CloseButton:  cfg.CloseButton,
		Duration:     cfg.Duration,
		Offset:       cfg.Offset,
		Gap:          cfg.Gap,
		Theme:        cfg.PreviewMode,
		ClassName:    preview.ClassName(cfg),
		SuccessTitle: preview.Title(toast.KindSuccess),
		DefaultTitle: preview.Title(toast.KindDefault),
		Description:  preview.Description,
	}

	for _, kind := range hostIconKinds {
		if code, ok := iconCode(cfg, kind, &imports); ok {
			data.Icons = append(data.Icons, iconEntry{Kind: kind, Code: code})
		}
	}
	if code, ok := iconCode(cfg, toast.KindDefault, &imports); ok {
		data.DefaultIcon = code
	}
	data.Imports = imports.names

	if cfg.SoundEnabled {
		data.Sound = newSoundData(cfg.SoundPreset, cfg.SoundVolume)
	}
	return data
}

// iconCode renders the icon element of kind. It reports false when the kind
// keeps the host's own icon.
func iconCode(cfg toast.Config, kind toast.Kind, imports *importSet) (string, bool) {
	state := cfg.Icon(kind)
	spin := kind == toast.KindLoading
	size := strconv.Itoa(cfg.IconSize)

	switch state.Mode {
	case toast.IconPreset:
		icon := icons.Lookup(state.Preset)
		imports.add(icon.Name)
		code := "<" + icon.Name + " size={" + size + "}"
		if spin {
			code += ` className="animate-spin"`
		}
		return code + " />", true
	case toast.IconCustom:
		class := "flex items-center justify-center"
		if spin {
			class += " animate-spin"
		}
		return "<div style={{ width: " + size + ", height: " + size + " }} className=\"" + class +
			"\" dangerouslySetInnerHTML={{ __html: `" + EscapeTemplateLiteral(state.CustomSVG) + "` }} />", true
	}
	return "", false
}

func newSoundData(preset toast.SoundPreset, volume float64) *soundData {
	if !preset.Valid() {
		preset = toast.SoundPop
	}
	sound := &soundData{
		Preset: preset,
		Volume: formatNumber(volume),
		Attack: formatNumber(audio.Attack),
		Floor:  formatNumber(audio.Floor),
	}
	for _, tone := range audio.Recipe(preset) {
		start := "ctx.currentTime"
		if tone.Start != 0 {
			start += " + " + formatNumber(tone.Start)
		}
		sound.Tones = append(sound.Tones, toneData{
			Wave:      tone.Wave,
			Frequency: formatNumber(tone.Frequency),
			Start:     start,
			Duration:  formatNumber(tone.Duration),
			Gain:      formatNumber(tone.Gain),
		})
	}
	return sound
}

var templateLiteralEscaper = strings.NewReplacer(`\`, `\\`, "`", "\\`", "${", `\${`)

// EscapeTemplateLiteral makes s safe to place between backticks.
func EscapeTemplateLiteral(s string) string {
	return templateLiteralEscaper.Replace(s)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
