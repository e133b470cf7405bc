// Package icons is the static registry of preset icons.
package icons

import "sort"

// Fallback is used for every key the registry does not know.
const Fallback = "check"

// Icon is one registry entry. Name is the component identifier used in
// generated code; Glyph is how the terminal studio draws it.
type Icon struct {
	Key   string
	Name  string
	Glyph string
	// Spins marks icons that read as activity indicators.
	Spins bool
}

var registry = map[string]Icon{
	"check":    {Name: "CheckCircle2", Glyph: "✔"},
	"shield":   {Name: "ShieldCheck", Glyph: "⛨"},
	"info":     {Name: "Info", Glyph: "ℹ"},
	"alert":    {Name: "AlertCircle", Glyph: "!"},
	"warning":  {Name: "AlertTriangle", Glyph: "⚠"},
	"error":    {Name: "CircleX", Glyph: "✖"},
	"help":     {Name: "CircleHelp", Glyph: "?"},
	"settings": {Name: "Settings", Glyph: "⚙"},
	"search":   {Name: "Search", Glyph: "⌕"},
	"menu":     {Name: "Menu", Glyph: "☰"},
	"trash":    {Name: "Trash2", Glyph: "🗑"},
	"plus":     {Name: "Plus", Glyph: "+"},
	"minus":    {Name: "Minus", Glyph: "−"},
	"close":    {Name: "X", Glyph: "✕"},
	"external": {Name: "ExternalLink", Glyph: "↗"},
	"eye":      {Name: "Eye", Glyph: "◉"},
	"eyeOff":   {Name: "EyeOff", Glyph: "◌"},
	"lock":     {Name: "Lock", Glyph: "🔒"},
	"unlock":   {Name: "Unlock", Glyph: "🔓"},
	"user":     {Name: "User", Glyph: "☺"},
	"users":    {Name: "Users", Glyph: "☻"},

	"successCircle": {Name: "CircleCheck", Glyph: "◎"},
	"alertCircle":   {Name: "CircleAlert", Glyph: "⊘"},
	"stop":          {Name: "CircleStop", Glyph: "■"},
	"pause":         {Name: "CirclePause", Glyph: "⏸"},

	"mail":    {Name: "Mail", Glyph: "✉"},
	"message": {Name: "MessageSquare", Glyph: "✎"},
	"phone":   {Name: "Phone", Glyph: "☎"},
	"send":    {Name: "Send", Glyph: "➤"},
	"share":   {Name: "Share2", Glyph: "⇪"},

	"star":     {Name: "Star", Glyph: "★"},
	"heart":    {Name: "Heart", Glyph: "♥"},
	"smile":    {Name: "Smile", Glyph: "☺"},
	"bell":     {Name: "Bell", Glyph: "🔔"},
	"zap":      {Name: "Zap", Glyph: "⚡"},
	"flame":    {Name: "Flame", Glyph: "🔥"},
	"coffee":   {Name: "Coffee", Glyph: "☕"},
	"ghost":    {Name: "Ghost", Glyph: "👻"},
	"terminal": {Name: "Terminal", Glyph: "❯"},
	"sparkles": {Name: "Sparkles", Glyph: "✦"},
	"rocket":   {Name: "Rocket", Glyph: "🚀"},
	"gift":     {Name: "Gift", Glyph: "🎁"},
	"trophy":   {Name: "Trophy", Glyph: "🏆"},
	"award":    {Name: "Award", Glyph: "🏅"},

	"code":         {Name: "Code2", Glyph: "</>"},
	"database":     {Name: "Database", Glyph: "⛁"},
	"cpu":          {Name: "Cpu", Glyph: "▣"},
	"globe":        {Name: "Globe", Glyph: "🌐"},
	"activity":     {Name: "Activity", Glyph: "∿"},
	"terminal_alt": {Name: "Terminal", Glyph: "$"},
	"refresh":      {Name: "RefreshCw", Glyph: "↻", Spins: true},
	"loader":       {Name: "Loader2", Glyph: "◌", Spins: true},

	"cart":   {Name: "ShoppingCart", Glyph: "🛒"},
	"card":   {Name: "CreditCard", Glyph: "💳"},
	"tag":    {Name: "Tag", Glyph: "🏷"},
	"wallet": {Name: "Wallet", Glyph: "👛"},

	"calendar": {Name: "Calendar", Glyph: "📅"},
	"clock":    {Name: "Clock", Glyph: "◷"},
	"map":      {Name: "MapPin", Glyph: "⌖"},

	"sun":       {Name: "Sun", Glyph: "☀"},
	"moon":      {Name: "Moon", Glyph: "☾"},
	"cloud":     {Name: "Cloud", Glyph: "☁"},
	"wind":      {Name: "Wind", Glyph: "≋"},
	"target":    {Name: "Target", Glyph: "◎"},
	"flag":      {Name: "Flag", Glyph: "⚑"},
	"anchor":    {Name: "Anchor", Glyph: "⚓"},
	"briefcase": {Name: "Briefcase", Glyph: "💼"},
}

// Lookup returns the icon registered under key, or the Fallback icon.
func Lookup(key string) Icon {
	icon, ok := registry[key]
	if !ok {
		key = Fallback
		icon = registry[Fallback]
	}
	icon.Key = key
	return icon
}

// Has reports whether key is registered.
func Has(key string) bool {
	_, ok := registry[key]
	return ok
}

// Keys returns every registered key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for key := range registry {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Next returns the key after key in Keys order, wrapping around.
func Next(key string) string {
	keys := Keys()
	for i, k := range keys {
		if k == key {
			return keys[(i+1)%len(keys)]
		}
	}
	return keys[0]
}
