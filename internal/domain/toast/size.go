package toast

// SizeSpec is one row of the size table.
type SizeSpec struct {
	Width    string
	Padding  string
	FontSize string
}

var sizeTable = map[Size]SizeSpec{
	SizeSmall:   {Width: "320px", Padding: "12px 16px", FontSize: "13px"},
	SizeMedium:  {Width: "380px", Padding: "16px 20px", FontSize: "14px"},
	SizeLarge:   {Width: "440px", Padding: "20px 24px", FontSize: "16px"},
	SizeXLarge:  {Width: "540px", Padding: "28px 32px", FontSize: "18px"},
	SizeXXLarge: {Width: "680px", Padding: "36px 44px", FontSize: "20px"},
}

// SizeFor returns the table row for size. Unknown sizes fall back to medium.
func SizeFor(size Size) SizeSpec {
	if spec, ok := sizeTable[size]; ok {
		return spec
	}
	return sizeTable[SizeMedium]
}
