package transform

// builtinAliases maps alternate names to registered IDs. Lookups accept
// either; listings show only the registered ID.
var builtinAliases = map[string]string{
	"removeDuplicateLines":  "duplicateLineRemover",
	"findDuplicateWords":    "duplicateWordFinder",
	"unicodeConverted":      "unicodeText",
	"unicodeBold":           "boldText",
	"textCompress":          "compressText",
	"removeFormattingASCII": "asciiOnly",
	"smallCaps":             "smallText",
}

func builtins() []Transform {
	return []Transform{
		// Case & Formatting
		{Descriptor{"sentenceCase", "Sentence Case", "Capitalize first letter of each sentence", CategoryCase}, capitalize},
		{Descriptor{"lowercase", "lower case", "Convert to lowercase", CategoryCase}, lowercase},
		{Descriptor{"uppercase", "UPPER CASE", "Convert to uppercase", CategoryCase}, uppercase},
		{Descriptor{"capitalized", "Capitalized Case", "Capitalize Each Word", CategoryCase}, capitalize},
		{Descriptor{"titleCase", "Title Case", "Title Style Capitalization", CategoryCase}, capitalize},
		{Descriptor{"alternatingCase", "aLtErNaTiNg cAsE", "Alternate between upper and lower case", CategoryCase}, alternatingCase},
		{Descriptor{"inverseCase", "InVeRsE CaSe", "Swap case of all letters", CategoryCase}, inverseCase},
		{Descriptor{"smartTitleCase", "Smart Title Case", "Title case that keeps articles and short prepositions lower", CategoryCase}, smartTitleCase},
		{Descriptor{"smartSentenceCase", "Smart Sentence Case", "Capitalize only the start of each sentence", CategoryCase}, smartSentenceCase},

		// Social Media
		{Descriptor{"boldText", "Bold Text", "Convert to bold unicode", CategorySocial}, boldMap.Func()},
		{Descriptor{"italicText", "Italic Text", "Convert to italic unicode", CategorySocial}, italicMap.Func()},
		{Descriptor{"smallText", "Small Text", "Tiny unicode characters", CategorySocial}, smallCapsMap.Func()},
		{Descriptor{"bubbleText", "Bubble Text", "Ⓣⓔⓧⓣ ⓘⓝ ⓑⓤⓑⓑⓛⓔⓢ", CategorySocial}, bubbleMap.Func()},
		{Descriptor{"gothicText", "Gothic Text", "𝔊𝔒𝔗ℌℑℭ 𝔗𝔈𝔛𝔗", CategorySocial}, gothicMap.Func()},
		{Descriptor{"wideText", "Wide Text", "Ｗｉｄｅ ｔｅｘｔ", CategorySocial}, wideMap.Func()},
		{Descriptor{"superscript", "Superscript", "ˢᵘᵖᵉʳˢᶜʳᶦᵖᵗ ᵗᵉˣᵗ", CategorySocial}, superscriptMap.Func()},
		{Descriptor{"subscript", "Subscript", "Lowered characters where a form exists", CategorySocial}, subscriptMap.Func()},
		{Descriptor{"strikethrough", "Strikethrough", "S̶t̶r̶i̶k̶e̶", CategorySocial}, strikethrough},
		{Descriptor{"underline", "Underline", "U̲n̲d̲e̲r̲l̲i̲n̲e̲", CategorySocial}, underline},
		{Descriptor{"discordFont", "Discord Font", "Special font for Discord", CategorySocial}, discordFont},
		{Descriptor{"instagramFont", "Instagram Font", "Stylish fonts for Instagram", CategorySocial}, instagramFont},
		{Descriptor{"twitterFont", "Twitter Font", "Fonts for X/Twitter", CategorySocial}, twitterFont},
		{Descriptor{"facebookFont", "Facebook Font", "Fonts for Facebook", CategorySocial}, facebookFont},

		// Text Effects
		{Descriptor{"reverseText", "Reverse Text", "txet esreveR", CategoryEffects}, reverseText},
		{Descriptor{"upsideDown", "Upside Down", "ʇxǝʇ uʍop-ǝpᴉsdn", CategoryEffects}, upsideDown},
		{Descriptor{"mirrorText", "Mirror Text", "txet rorriM", CategoryEffects}, reverseText},
		{Descriptor{"zalgoText", "Zalgo Text", "C̵o̵r̵r̵u̵p̵t̵e̵d̵ text", CategoryEffects}, zalgoText},
		{Descriptor{"invisibleText", "Invisible Text", "Empty/zero-width characters", CategoryEffects}, invisibleText},
		{Descriptor{"cursedText", "Cursed Text", "Weird text effects", CategoryEffects}, cursedText},
		{Descriptor{"slashText", "Slash Text", "T/e/x/t/ /w/i/t/h/ /s/l/a/s/h/e/s", CategoryEffects}, slashText},
		{Descriptor{"stackedText", "Stacked Text", "One character per line", CategoryEffects}, stackedText},
		{Descriptor{"wingdings", "Wingdings", "Convert to Wingdings symbols", CategoryEffects}, wingdingsMap.Func()},
		{Descriptor{"whitespaceText", "Whitespace Text", "Text with extra spaces", CategoryEffects}, whitespaceText},

		// Cleanup & Analysis
		{Descriptor{"removeSpaces", "Remove Spaces", "Delete all spaces", CategoryCleanup}, removeSpaces},
		{Descriptor{"removeLineBreaks", "Remove Line Breaks", "Convert to single line", CategoryCleanup}, removeLineBreaks},
		{Descriptor{"removeUnderscores", "Remove Underscores", "Delete all _ characters", CategoryCleanup}, removeUnderscores},
		{Descriptor{"removeFormatting", "Remove Formatting", "Strip all formatting", CategoryCleanup}, removeFormatting},
		{Descriptor{"removeLetters", "Remove Letters", "Keep only numbers/symbols", CategoryCleanup}, removeLetters},
		{Descriptor{"duplicateLineRemover", "Duplicate Line Remover", "Remove repeated lines", CategoryCleanup}, duplicateLineRemover},
		{Descriptor{"duplicateWordFinder", "Duplicate Word Finder", "Find repeated words", CategoryCleanup}, duplicateWordFinder},
		{Descriptor{"adjacentDuplicateWords", "Adjacent Duplicate Words", "Find words repeated back to back", CategoryCleanup}, adjacentDuplicateWords},
		{Descriptor{"plainText", "Plain Text", "Convert to plain text only", CategoryCleanup}, plainText},
		{Descriptor{"whitespaceRemover", "Whitespace Remover", "Remove extra spaces", CategoryCleanup}, compressText},
		{Descriptor{"removeExtraSpaces", "Remove Extra Spaces", "Collapse spaces and blank lines", CategoryCleanup}, removeExtraSpaces},
		{Descriptor{"addLineNumbers", "Add Line Numbers", "Number each line", CategoryCleanup}, addLineNumbers},
		{Descriptor{"sortLines", "Sort Lines", "Alphabetical line order", CategoryCleanup}, sortLines},
		{Descriptor{"stripDiacritics", "Strip Diacritics", "Remove accents and marks", CategoryCleanup}, stripDiacritics},
		{Descriptor{"asciiOnly", "ASCII Only", "Strip accents and drop non-ASCII characters", CategoryCleanup}, asciiOnly},
		{Descriptor{"removeNonAlphanumeric", "Remove Symbols", "Keep only letters and digits", CategoryCleanup}, removeNonAlphanumeric},

		// Encoding & Technical
		{Descriptor{"apaFormat", "APA Format", "Academic citation format", CategoryEncoding}, apaFormat},
		{Descriptor{"phoneticSpelling", "Phonetic Spelling", "Foh-NEH-tik SPEL-ing", CategoryEncoding}, phoneticSpelling},
		{Descriptor{"pigLatin", "Pig Latin", "Igpay Atinlay anslatortray", CategoryEncoding}, pigLatin},
		{Descriptor{"unicodeText", "Unicode Text", "Convert to unicode points", CategoryEncoding}, unicodeText},
		{Descriptor{"base64Encode", "Base64 Encode", "Encode to base64", CategoryEncoding}, base64Encode},
		{Descriptor{"base64Decode", "Base64 Decode", "Decode from base64", CategoryEncoding}, base64Decode},
		{Descriptor{"extractEmails", "Extract Emails", "Find email addresses", CategoryEncoding}, extractEmails},
		{Descriptor{"compressText", "Text Compress", "Remove extra whitespace", CategoryEncoding}, compressText},
		{Descriptor{"bigText", "Big Text", "Large unicode characters", CategoryEncoding}, bigText},
	}
}
