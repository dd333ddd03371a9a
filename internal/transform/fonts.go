package transform

// Mathematical alphanumeric blocks have holes where a letter was encoded
// earlier in Letterlike Symbols; the overrides below fill them.
var (
	boldMap = CharMap{}.
		withRange('A', 'Z', 0x1D5D4).
		withRange('a', 'z', 0x1D5EE)

	italicMap = CharMap{}.
		withRange('A', 'Z', 0x1D434).
		withRange('a', 'z', 0x1D44E).
		with(map[rune]string{'h': "ℎ"})

	smallCapsMap = CharMap{}.with(pairs(
		"abcdefghijklmnopqrstuvwxyz",
		"ᴀʙᴄᴅᴇꜰɢʜɪᴊᴋʟᴍɴᴏᴘǫʀꜱᴛᴜᴠᴡxʏᴢ",
	))

	bubbleMap = CharMap{}.
		withRange('A', 'Z', 0x24B6).
		withRange('a', 'z', 0x24D0).
		withRange('1', '9', 0x2460).
		with(map[rune]string{'0': "⓪"})

	gothicMap = CharMap{}.
		withRange('A', 'Z', 0x1D504).
		with(map[rune]string{
			'C': "ℭ",
			'H': "ℌ",
			'I': "ℑ",
			'R': "ℜ",
			'Z': "ℨ",
		})

	wideMap = CharMap{}.
		withRange('A', 'Z', 0xFF21).
		withRange('a', 'z', 0xFF41).
		withRange('0', '9', 0xFF10)

	superscriptMap = CharMap{}.
		with(pairs("0123456789", "⁰¹²³⁴⁵⁶⁷⁸⁹")).
		with(pairs("abcdefghijklmnoprstuvwxyz", "ᵃᵇᶜᵈᵉᶠᵍʰᶦʲᵏˡᵐⁿᵒᵖʳˢᵗᵘᵛʷˣʸᶻ")).
		with(pairs("ABDEGHIJKLMNOPRTUVW", "ᴬᴮᴰᴱᴳᴴᴵᴶᴷᴸᴹᴺᴼᴾᴿᵀᵁⱽᵂ")).
		with(pairs("+-=()", "⁺⁻⁼⁽⁾"))

	subscriptMap = CharMap{}.
		withRange('0', '9', 0x2080).
		with(pairs("aehijklmnoprstuvx", "ₐₑₕᵢⱼₖₗₘₙₒₚᵣₛₜᵤᵥₓ")).
		with(pairs("+-=()", "₊₋₌₍₎"))

	upsideDownMap = CharMap{}.
		with(pairs("abcdefghijklmnopqrstuvwxyz", "ɐqɔpǝɟƃɥᴉɾʞlɯuodbɹsʇnʌʍxʎz")).
		with(pairs("ABCDEFGHIJKLMNOPQRSTUVWXYZ", "∀BƆDƎℲפHIſʞ˥WNOԀQᴚS⊥∩ΛMX⅄Z")).
		with(pairs("0123456789", "0ƖᄅƐㄣϛ9ㄥ86")).
		with(pairs(".,'!?()[]{}<>&_", "˙',¡¿)(][}{><⅋‾"))

	wingdingsMap = CharMap{
		'a': "✌", 'b': "☜", 'c': "☞", 'd': "☝", 'e': "☟", 'f': "✋", 'g': "☺",
		'h': "🙁", 'i': "👌", 'j': "👍", 'k': "👎", 'l': "☹", 'm': "💣", 'n': "☠",
		'o': "⚡", 'p': "🔑", 'q': "💎", 'r': "👁", 's': "⭐", 't': "🌙", 'u': "☁",
		'v': "🌂", 'w': "✂", 'x': "📁", 'y': "📂", 'z': "👓",
		'A': "♈", 'B': "♉", 'C': "♊", 'D': "♋", 'E': "♌", 'F': "♍", 'G': "♎",
		'H': "♏", 'I': "♐", 'J': "♑", 'K': "♒", 'L': "♓", 'O': "●", 'P': "❍",
		'Q': "■", 'R': "□", 'S': "⧄", 'T': "◆", 'U': "❖", 'V': "⬟", 'W': "⬢",
		'X': "⬡", 'Y': "⭔", 'Z': "◎",
	}
)

const (
	combiningLongStroke = "\u0336"
	combiningLowLine    = "\u0332"

	twitterGlyph  = "🔹"
	facebookGlyph = "📘"
	discordFence  = "```"
)

func strikethrough(in string, _ Params) string { return markEach(in, combiningLongStroke) }

func underline(in string, _ Params) string { return markEach(in, combiningLowLine) }

// upsideDown flips each character and then reverses the sequence so the
// text reads correctly when rotated.
func upsideDown(in string, _ Params) string {
	return reverseGraphemes(upsideDownMap.Apply(in))
}

func discordFont(in string, _ Params) string { return discordFence + in + discordFence }

func instagramFont(in string, _ Params) string {
	return boldMap.Apply(in) + " " + italicMap.Apply(in)
}

func twitterFont(in string, _ Params) string {
	return twitterGlyph + " " + boldMap.Apply(in) + " " + twitterGlyph
}

func facebookFont(in string, _ Params) string {
	return facebookGlyph + " " + in + " " + facebookGlyph
}

func bigText(in string, p Params) string {
	return boldMap.Apply(uppercase(in, p))
}
