//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Kexogg
//
// This file is part of clean-code.
//
// clean-code is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2022-present Kexogg
//-----------------------------------------------------------------------------

package encoder_test

var tcsMarkup = []markupTestCase{
	{
		descr: "Empty markup should produce nothing",
		src:   "",
		expect: expectMap{
			encoderHTML:   "",
			encoderMD:     "",
			encoderNative: "",
			encoderText:   "",
			encoderMarkup: useMarkup,
		},
	},
	{
		descr: "Simple text: Hello, world",
		src:   "Hello, world",
		expect: expectMap{
			encoderHTML:   "Hello, world",
			encoderMD:     "Hello, world",
			encoderNative: `[Text "Hello, world"]`,
			encoderText:   "Hello, world",
			encoderMarkup: useMarkup,
		},
	},
	{
		descr: "Italic formatting",
		src:   "_italic_",
		expect: expectMap{
			encoderHTML:   "<em>italic</em>",
			encoderMD:     "*italic*",
			encoderNative: "[ITALIC\n [Text \"italic\"]]",
			encoderText:   "italic",
			encoderMarkup: useMarkup,
		},
	},
	{
		descr: "Bold formatting",
		src:   "__bold__",
		expect: expectMap{
			encoderHTML:   "<strong>bold</strong>",
			encoderMD:     "**bold**",
			encoderNative: "[BOLD\n [Text \"bold\"]]",
			encoderText:   "bold",
			encoderMarkup: useMarkup,
		},
	},
	{
		descr: "Italic inside bold",
		src:   "__bold _italic_ text__",
		expect: expectMap{
			encoderHTML:   "<strong>bold <em>italic</em> text</strong>",
			encoderMD:     "**bold *italic* text**",
			encoderNative: "[BOLD\n [Text \"bold \"]\n [ITALIC\n  [Text \"italic\"]]\n [Text \" text\"]]",
			encoderText:   "bold italic text",
			encoderMarkup: useMarkup,
		},
	},
	{
		descr: "Bold inside italic stays literal",
		src:   "_a __b__ c_",
		expect: expectMap{
			encoderHTML:   "<em>a __b__ c</em>",
			encoderMD:     `*a \_\_b\_\_ c*`,
			encoderNative: "[ITALIC\n [Text \"a __b__ c\"]]",
			encoderText:   "a __b__ c",
			encoderMarkup: `_a \__b\__ c_`,
		},
	},
	{
		descr: "Header at end of text",
		src:   "#Header",
		expect: expectMap{
			encoderHTML:   "<h1>Header</h1>",
			encoderMD:     "# Header\n",
			encoderNative: "[HEADER\n [Text \"Header\"]]",
			encoderText:   "Header\n",
			encoderMarkup: "#Header\n",
		},
	},
	{
		descr: "Header followed by text",
		src:   "#Hello, __world__!\ntext",
		expect: expectMap{
			encoderHTML:   "<h1>Hello, <strong>world</strong>!</h1>text",
			encoderMD:     "# Hello, **world**\\!\ntext",
			encoderNative: "[HEADER\n [Text \"Hello, \"]\n [BOLD\n  [Text \"world\"]]\n [Text \"!\"]]\n[Text \"text\"]",
			encoderText:   "Hello, world!\ntext",
			encoderMarkup: useMarkup,
		},
	},
	{
		descr: "Header sign inside a line",
		src:   "word #header",
		expect: expectMap{
			encoderHTML:   "word #header",
			encoderNative: `[Text "word #header"]`,
			encoderMarkup: `word \#header`,
		},
	},
	{
		descr: "Line break",
		src:   "a\nb",
		expect: expectMap{
			encoderHTML:   "a<br />b",
			encoderMD:     "a\\\nb",
			encoderNative: "[Text \"a\"]\n[BREAK]\n[Text \"b\"]",
			encoderText:   "a\nb",
			encoderMarkup: useMarkup,
		},
	},
	{
		descr: "Image",
		src:   "Look ![a cat](cat.png) here",
		expect: expectMap{
			encoderHTML:   `Look <img alt="a cat" src="cat.png" /> here`,
			encoderMD:     "Look ![a cat](cat.png) here",
			encoderNative: "[Text \"Look \"]\n[IMAGE (alt=\"a cat\" src=\"cat.png\")]\n[Text \" here\"]",
			encoderText:   "Look a cat here",
			encoderMarkup: useMarkup,
		},
	},
	{
		descr: "Image without alt text has no attributes",
		src:   "![](cat.png)",
		expect: expectMap{
			encoderHTML:   "<img />",
			encoderNative: "[IMAGE]",
			encoderText:   "",
			encoderMarkup: "![]()",
		},
	},
	{
		descr: "Escaped delimiters",
		src:   `Hello, \_world\_!`,
		expect: expectMap{
			encoderHTML:   "Hello, _world_!",
			encoderMD:     `Hello, \_world\_\!`,
			encoderNative: `[Text "Hello, _world_!"]`,
			encoderText:   "Hello, _world_!",
			encoderMarkup: useMarkup,
		},
	},
	{
		descr: "Escaped escape character",
		src:   `\\_escaped escape character_`,
		expect: expectMap{
			encoderHTML:   `\<em>escaped escape character</em>`,
			encoderNative: "[Text \"\\\\\"]\n[ITALIC\n [Text \"escaped escape character\"]]",
			encoderMarkup: useMarkup,
		},
	},
	{
		descr: "Backslash without delimiter stays",
		src:   `\not escaped tag\`,
		expect: expectMap{
			encoderHTML:   `\not escaped tag\`,
			encoderNative: `[Text "\\not escaped tag\\"]`,
			encoderMarkup: `\\not escaped tag\\`,
		},
	},
	{
		descr: "Delimiters next to digits",
		src:   "word w__1__th numb_3_rs",
		expect: expectMap{
			encoderHTML:   "word w__1__th numb_3_rs",
			encoderMarkup: `word w\__1\__th numb\_3\_rs`,
		},
	},
	{
		descr: "Delimiters across words",
		src:   "cro_ss word t_ag",
		expect: expectMap{
			encoderHTML: "cro_ss word t_ag",
		},
	},
	{
		descr: "Empty delimiter pair",
		src:   "____",
		expect: expectMap{
			encoderHTML:   "____",
			encoderMarkup: `\__\__`,
		},
	},
	{
		descr: "Literal underscores before a closer",
		src:   "000 _0___",
		expect: expectMap{
			encoderHTML:   "000 <em>0__</em>",
			encoderNative: "[Text \"000 \"]\n[ITALIC\n [Text \"0__\"]]",
			encoderMarkup: `000 _0\___`,
		},
	},
	{
		descr: "Odd run of literal underscores",
		src:   `_x \_\_\_ y_`,
		expect: expectMap{
			encoderHTML:   "<em>x ___ y</em>",
			encoderMarkup: `_x \_\__ y_`,
		},
	},
	{
		descr: "Crossing spans are literal",
		src:   "_ab __cd_ ef__",
		expect: expectMap{
			encoderHTML: "_ab __cd_ ef__",
			encoderText: "_ab __cd_ ef__",
		},
	},
	{
		descr: "HTML special characters",
		src:   `a < b & "c" 'd'`,
		expect: expectMap{
			encoderHTML:   "a &lt; b &amp; &quot;c&quot; &#39;d&#39;",
			encoderMD:     `a \< b \& "c" 'd'`,
			encoderNative: `[Text "a < b & \"c\" 'd'"]`,
			encoderText:   `a < b & "c" 'd'`,
			encoderMarkup: useMarkup,
		},
	},
}
