package input

import "strings"

// Key represents a keyboard key. The numeric value of a Key is its SDL
// keycode (https://wiki.libsdl.org/SDLKeycodeLookup), so backends emitting
// raw SDL codes interoperate without translation.
type Key uint32

// Keyboard keys and their SDL keycodes.
const (
	KeyUnknown      Key = 0x00
	KeyBackspace    Key = 0x08
	KeyTab          Key = 0x09
	KeyReturn       Key = 0x0D
	KeyEscape       Key = 0x1B
	KeySpace        Key = 0x20
	KeyExclaim      Key = 0x21
	KeyQuotedbl     Key = 0x22
	KeyHash         Key = 0x23
	KeyDollar       Key = 0x24
	KeyPercent      Key = 0x25
	KeyAmpersand    Key = 0x26
	KeyQuote        Key = 0x27
	KeyLeftParen    Key = 0x28
	KeyRightParen   Key = 0x29
	KeyAsterisk     Key = 0x2A
	KeyPlus         Key = 0x2B
	KeyComma        Key = 0x2C
	KeyMinus        Key = 0x2D
	KeyPeriod       Key = 0x2E
	KeySlash        Key = 0x2F
	Key0            Key = 0x30
	Key1            Key = 0x31
	Key2            Key = 0x32
	Key3            Key = 0x33
	Key4            Key = 0x34
	Key5            Key = 0x35
	Key6            Key = 0x36
	Key7            Key = 0x37
	Key8            Key = 0x38
	Key9            Key = 0x39
	KeyColon        Key = 0x3A
	KeySemicolon    Key = 0x3B
	KeyLess         Key = 0x3C
	KeyEquals       Key = 0x3D
	KeyGreater      Key = 0x3E
	KeyQuestion     Key = 0x3F
	KeyAt           Key = 0x40
	KeyLeftBracket  Key = 0x5B
	KeyBackslash    Key = 0x5C
	KeyRightBracket Key = 0x5D
	KeyCaret        Key = 0x5E
	KeyUnderscore   Key = 0x5F
	KeyBackquote    Key = 0x60
	KeyA            Key = 0x61
	KeyB            Key = 0x62
	KeyC            Key = 0x63
	KeyD            Key = 0x64
	KeyE            Key = 0x65
	KeyF            Key = 0x66
	KeyG            Key = 0x67
	KeyH            Key = 0x68
	KeyI            Key = 0x69
	KeyJ            Key = 0x6A
	KeyK            Key = 0x6B
	KeyL            Key = 0x6C
	KeyM            Key = 0x6D
	KeyN            Key = 0x6E
	KeyO            Key = 0x6F
	KeyP            Key = 0x70
	KeyQ            Key = 0x71
	KeyR            Key = 0x72
	KeyS            Key = 0x73
	KeyT            Key = 0x74
	KeyU            Key = 0x75
	KeyV            Key = 0x76
	KeyW            Key = 0x77
	KeyX            Key = 0x78
	KeyY            Key = 0x79
	KeyZ            Key = 0x7A
	KeyDelete       Key = 0x7F

	KeyCapsLock          Key = 0x40000039
	KeyF1                Key = 0x4000003A
	KeyF2                Key = 0x4000003B
	KeyF3                Key = 0x4000003C
	KeyF4                Key = 0x4000003D
	KeyF5                Key = 0x4000003E
	KeyF6                Key = 0x4000003F
	KeyF7                Key = 0x40000040
	KeyF8                Key = 0x40000041
	KeyF9                Key = 0x40000042
	KeyF10               Key = 0x40000043
	KeyF11               Key = 0x40000044
	KeyF12               Key = 0x40000045
	KeyPrintScreen       Key = 0x40000046
	KeyScrollLock        Key = 0x40000047
	KeyPause             Key = 0x40000048
	KeyInsert            Key = 0x40000049
	KeyHome              Key = 0x4000004A
	KeyPageUp            Key = 0x4000004B
	KeyEnd               Key = 0x4000004D
	KeyPageDown          Key = 0x4000004E
	KeyRight             Key = 0x4000004F
	KeyLeft              Key = 0x40000050
	KeyDown              Key = 0x40000051
	KeyUp                Key = 0x40000052
	KeyNumLockClear      Key = 0x40000053
	KeyNumPadDivide      Key = 0x40000054
	KeyNumPadMultiply    Key = 0x40000055
	KeyNumPadMinus       Key = 0x40000056
	KeyNumPadPlus        Key = 0x40000057
	KeyNumPadEnter       Key = 0x40000058
	KeyNumPad1           Key = 0x40000059
	KeyNumPad2           Key = 0x4000005A
	KeyNumPad3           Key = 0x4000005B
	KeyNumPad4           Key = 0x4000005C
	KeyNumPad5           Key = 0x4000005D
	KeyNumPad6           Key = 0x4000005E
	KeyNumPad7           Key = 0x4000005F
	KeyNumPad8           Key = 0x40000060
	KeyNumPad9           Key = 0x40000061
	KeyNumPad0           Key = 0x40000062
	KeyNumPadPeriod      Key = 0x40000063
	KeyApplication       Key = 0x40000065
	KeyPower             Key = 0x40000066
	KeyNumPadEquals      Key = 0x40000067
	KeyF13               Key = 0x40000068
	KeyF14               Key = 0x40000069
	KeyF15               Key = 0x4000006A
	KeyF16               Key = 0x4000006B
	KeyF17               Key = 0x4000006C
	KeyF18               Key = 0x4000006D
	KeyF19               Key = 0x4000006E
	KeyF20               Key = 0x4000006F
	KeyF21               Key = 0x40000070
	KeyF22               Key = 0x40000071
	KeyF23               Key = 0x40000072
	KeyF24               Key = 0x40000073
	KeyExecute           Key = 0x40000074
	KeyHelp              Key = 0x40000075
	KeyMenu              Key = 0x40000076
	KeySelect            Key = 0x40000077
	KeyStop              Key = 0x40000078
	KeyAgain             Key = 0x40000079
	KeyUndo              Key = 0x4000007A
	KeyCut               Key = 0x4000007B
	KeyCopy              Key = 0x4000007C
	KeyPaste             Key = 0x4000007D
	KeyFind              Key = 0x4000007E
	KeyMute              Key = 0x4000007F
	KeyVolumeUp          Key = 0x40000080
	KeyVolumeDown        Key = 0x40000081
	KeyNumPadComma       Key = 0x40000085
	KeyNumPadEqualsAS400 Key = 0x40000086
	KeyAltErase          Key = 0x40000099
	KeySysreq            Key = 0x4000009A
	KeyCancel            Key = 0x4000009B
	KeyClear             Key = 0x4000009C
	KeyPrior             Key = 0x4000009D
	KeyReturn2           Key = 0x4000009E
	KeySeparator         Key = 0x4000009F
	KeyOut               Key = 0x400000A0
	KeyOper              Key = 0x400000A1
	KeyClearAgain        Key = 0x400000A2
	KeyCrSel             Key = 0x400000A3
	KeyExSel             Key = 0x400000A4
	KeyNumPad00          Key = 0x400000B0
	KeyNumPad000         Key = 0x400000B1
	KeyThousandsSep      Key = 0x400000B2
	KeyDecimalSep        Key = 0x400000B3
	KeyCurrencyUnit      Key = 0x400000B4
	KeyCurrencySubUnit   Key = 0x400000B5
	KeyNumPadLeftParen   Key = 0x400000B6
	KeyNumPadRightParen  Key = 0x400000B7
	KeyNumPadLeftBrace   Key = 0x400000B8
	KeyNumPadRightBrace  Key = 0x400000B9
	KeyNumPadTab         Key = 0x400000BA
	KeyNumPadBackspace   Key = 0x400000BB
	KeyNumPadA           Key = 0x400000BC
	KeyNumPadB           Key = 0x400000BD
	KeyNumPadC           Key = 0x400000BE
	KeyNumPadD           Key = 0x400000BF
	KeyNumPadE           Key = 0x400000C0
	KeyNumPadF           Key = 0x400000C1
	KeyNumPadXor         Key = 0x400000C2
	KeyNumPadPower       Key = 0x400000C3
	KeyNumPadPercent     Key = 0x400000C4
	KeyNumPadLess        Key = 0x400000C5
	KeyNumPadGreater     Key = 0x400000C6
	KeyNumPadAmpersand   Key = 0x400000C7
	KeyNumPadDblAmp      Key = 0x400000C8
	KeyNumPadVertBar     Key = 0x400000C9
	KeyNumPadDblVertBar  Key = 0x400000CA
	KeyNumPadColon       Key = 0x400000CB
	KeyNumPadHash        Key = 0x400000CC
	KeyNumPadSpace       Key = 0x400000CD
	KeyNumPadAt          Key = 0x400000CE
	KeyNumPadExclam      Key = 0x400000CF
	KeyNumPadMemStore    Key = 0x400000D0
	KeyNumPadMemRecall   Key = 0x400000D1
	KeyNumPadMemClear    Key = 0x400000D2
	KeyNumPadMemAdd      Key = 0x400000D3
	KeyNumPadMemSubtract Key = 0x400000D4
	KeyNumPadMemMultiply Key = 0x400000D5
	KeyNumPadMemDivide   Key = 0x400000D6
	KeyNumPadPlusMinus   Key = 0x400000D7
	KeyNumPadClear       Key = 0x400000D8
	KeyNumPadClearEntry  Key = 0x400000D9
	KeyNumPadBinary      Key = 0x400000DA
	KeyNumPadOctal       Key = 0x400000DB
	KeyNumPadDecimal     Key = 0x400000DC
	KeyNumPadHexadecimal Key = 0x400000DD
	KeyLCtrl             Key = 0x400000E0
	KeyLShift            Key = 0x400000E1
	KeyLAlt              Key = 0x400000E2
	KeyLGui              Key = 0x400000E3
	KeyRCtrl             Key = 0x400000E4
	KeyRShift            Key = 0x400000E5
	KeyRAlt              Key = 0x400000E6
	KeyRGui              Key = 0x400000E7
	KeyMode              Key = 0x40000101
	KeyAudioNext         Key = 0x40000102
	KeyAudioPrev         Key = 0x40000103
	KeyAudioStop         Key = 0x40000104
	KeyAudioPlay         Key = 0x40000105
	KeyAudioMute         Key = 0x40000106
	KeyMediaSelect       Key = 0x40000107
	KeyWww               Key = 0x40000108
	KeyMail              Key = 0x40000109
	KeyCalculator        Key = 0x4000010A
	KeyComputer          Key = 0x4000010B
	KeyAcSearch          Key = 0x4000010C
	KeyAcHome            Key = 0x4000010D
	KeyAcBack            Key = 0x4000010E
	KeyAcForward         Key = 0x4000010F
	KeyAcStop            Key = 0x40000110
	KeyAcRefresh         Key = 0x40000111
	KeyAcBookmarks       Key = 0x40000112
	KeyBrightnessDown    Key = 0x40000113
	KeyBrightnessUp      Key = 0x40000114
	KeyDisplaySwitch     Key = 0x40000115
	KeyKbdIllumToggle    Key = 0x40000116
	KeyKbdIllumDown      Key = 0x40000117
	KeyKbdIllumUp        Key = 0x40000118
	KeyEject             Key = 0x40000119
	KeySleep             Key = 0x4000011A
)

// keyNames maps every defined key to its display name. Membership in this
// map is also what makes a keycode "defined" for KeyFromCode.
var keyNames = map[Key]string{
	KeyUnknown:           "Unknown",
	KeyBackspace:         "Backspace",
	KeyTab:               "Tab",
	KeyReturn:            "Return",
	KeyEscape:            "Escape",
	KeySpace:             "Space",
	KeyExclaim:           "!",
	KeyQuotedbl:          "\"",
	KeyHash:              "#",
	KeyDollar:            "$",
	KeyPercent:           "%",
	KeyAmpersand:         "&",
	KeyQuote:             "'",
	KeyLeftParen:         "(",
	KeyRightParen:        ")",
	KeyAsterisk:          "*",
	KeyPlus:              "+",
	KeyComma:             ",",
	KeyMinus:             "-",
	KeyPeriod:            ".",
	KeySlash:             "/",
	Key0:                 "0",
	Key1:                 "1",
	Key2:                 "2",
	Key3:                 "3",
	Key4:                 "4",
	Key5:                 "5",
	Key6:                 "6",
	Key7:                 "7",
	Key8:                 "8",
	Key9:                 "9",
	KeyColon:             ":",
	KeySemicolon:         ";",
	KeyLess:              "<",
	KeyEquals:            "=",
	KeyGreater:           ">",
	KeyQuestion:          "?",
	KeyAt:                "@",
	KeyLeftBracket:       "[",
	KeyBackslash:         "\\",
	KeyRightBracket:      "]",
	KeyCaret:             "^",
	KeyUnderscore:        "_",
	KeyBackquote:         "`",
	KeyA:                 "A",
	KeyB:                 "B",
	KeyC:                 "C",
	KeyD:                 "D",
	KeyE:                 "E",
	KeyF:                 "F",
	KeyG:                 "G",
	KeyH:                 "H",
	KeyI:                 "I",
	KeyJ:                 "J",
	KeyK:                 "K",
	KeyL:                 "L",
	KeyM:                 "M",
	KeyN:                 "N",
	KeyO:                 "O",
	KeyP:                 "P",
	KeyQ:                 "Q",
	KeyR:                 "R",
	KeyS:                 "S",
	KeyT:                 "T",
	KeyU:                 "U",
	KeyV:                 "V",
	KeyW:                 "W",
	KeyX:                 "X",
	KeyY:                 "Y",
	KeyZ:                 "Z",
	KeyDelete:            "Delete",
	KeyCapsLock:          "CapsLock",
	KeyF1:                "F1",
	KeyF2:                "F2",
	KeyF3:                "F3",
	KeyF4:                "F4",
	KeyF5:                "F5",
	KeyF6:                "F6",
	KeyF7:                "F7",
	KeyF8:                "F8",
	KeyF9:                "F9",
	KeyF10:               "F10",
	KeyF11:               "F11",
	KeyF12:               "F12",
	KeyPrintScreen:       "PrintScreen",
	KeyScrollLock:        "ScrollLock",
	KeyPause:             "Pause",
	KeyInsert:            "Insert",
	KeyHome:              "Home",
	KeyPageUp:            "PageUp",
	KeyEnd:               "End",
	KeyPageDown:          "PageDown",
	KeyRight:             "Right",
	KeyLeft:              "Left",
	KeyDown:              "Down",
	KeyUp:                "Up",
	KeyNumLockClear:      "NumLockClear",
	KeyNumPadDivide:      "NumPad/",
	KeyNumPadMultiply:    "NumPad*",
	KeyNumPadMinus:       "NumPad-",
	KeyNumPadPlus:        "NumPad+",
	KeyNumPadEnter:       "NumPadEnter",
	KeyNumPad1:           "NumPad1",
	KeyNumPad2:           "NumPad2",
	KeyNumPad3:           "NumPad3",
	KeyNumPad4:           "NumPad4",
	KeyNumPad5:           "NumPad5",
	KeyNumPad6:           "NumPad6",
	KeyNumPad7:           "NumPad7",
	KeyNumPad8:           "NumPad8",
	KeyNumPad9:           "NumPad9",
	KeyNumPad0:           "NumPad0",
	KeyNumPadPeriod:      "NumPad.",
	KeyApplication:       "Application",
	KeyPower:             "Power",
	KeyNumPadEquals:      "NumPad=",
	KeyF13:               "F13",
	KeyF14:               "F14",
	KeyF15:               "F15",
	KeyF16:               "F16",
	KeyF17:               "F17",
	KeyF18:               "F18",
	KeyF19:               "F19",
	KeyF20:               "F20",
	KeyF21:               "F21",
	KeyF22:               "F22",
	KeyF23:               "F23",
	KeyF24:               "F24",
	KeyExecute:           "Execute",
	KeyHelp:              "Help",
	KeyMenu:              "Menu",
	KeySelect:            "Select",
	KeyStop:              "Stop",
	KeyAgain:             "Again",
	KeyUndo:              "Undo",
	KeyCut:               "Cut",
	KeyCopy:              "Copy",
	KeyPaste:             "Paste",
	KeyFind:              "Find",
	KeyMute:              "Mute",
	KeyVolumeUp:          "VolumeUp",
	KeyVolumeDown:        "VolumeDown",
	KeyNumPadComma:       "NumPad,",
	KeyNumPadEqualsAS400: "NumPad=AS400",
	KeyAltErase:          "AltErase",
	KeySysreq:            "Sysreq",
	KeyCancel:            "Cancel",
	KeyClear:             "Clear",
	KeyPrior:             "Prior",
	KeyReturn2:           "Return2",
	KeySeparator:         "Separator",
	KeyOut:               "Out",
	KeyOper:              "Oper",
	KeyClearAgain:        "ClearAgain",
	KeyCrSel:             "CrSel",
	KeyExSel:             "ExSel",
	KeyNumPad00:          "NumPad00",
	KeyNumPad000:         "NumPad000",
	KeyThousandsSep:      "ThousandsSeparator",
	KeyDecimalSep:        "DecimalSeparator",
	KeyCurrencyUnit:      "CurrencyUnit",
	KeyCurrencySubUnit:   "CurrencySubUnit",
	KeyNumPadLeftParen:   "NumPad(",
	KeyNumPadRightParen:  "NumPad)",
	KeyNumPadLeftBrace:   "NumPad{",
	KeyNumPadRightBrace:  "NumPad}",
	KeyNumPadTab:         "NumPadTab",
	KeyNumPadBackspace:   "NumPadBackspace",
	KeyNumPadA:           "NumPadA",
	KeyNumPadB:           "NumPadB",
	KeyNumPadC:           "NumPadC",
	KeyNumPadD:           "NumPadD",
	KeyNumPadE:           "NumPadE",
	KeyNumPadF:           "NumPadF",
	KeyNumPadXor:         "NumPadXor",
	KeyNumPadPower:       "NumPadPower",
	KeyNumPadPercent:     "NumPad%",
	KeyNumPadLess:        "NumPad<",
	KeyNumPadGreater:     "NumPad>",
	KeyNumPadAmpersand:   "NumPad&",
	KeyNumPadDblAmp:      "NumPad&&",
	KeyNumPadVertBar:     "NumPad|",
	KeyNumPadDblVertBar:  "NumPad||",
	KeyNumPadColon:       "NumPad:",
	KeyNumPadHash:        "NumPad#",
	KeyNumPadSpace:       "NumPadSpace",
	KeyNumPadAt:          "NumPad@",
	KeyNumPadExclam:      "NumPad!",
	KeyNumPadMemStore:    "NumPadMemStore",
	KeyNumPadMemRecall:   "NumPadMemRecall",
	KeyNumPadMemClear:    "NumPadMemClear",
	KeyNumPadMemAdd:      "NumPadMemAdd",
	KeyNumPadMemSubtract: "NumPadMemSubtract",
	KeyNumPadMemMultiply: "NumPadMemMultiply",
	KeyNumPadMemDivide:   "NumPadMemDivide",
	KeyNumPadPlusMinus:   "NumPad+-",
	KeyNumPadClear:       "NumPadClear",
	KeyNumPadClearEntry:  "NumPadClearEntry",
	KeyNumPadBinary:      "NumPadBinary",
	KeyNumPadOctal:       "NumPadOctal",
	KeyNumPadDecimal:     "NumPadDecimal",
	KeyNumPadHexadecimal: "NumPadHexadecimal",
	KeyLCtrl:             "LCtrl",
	KeyLShift:            "LShift",
	KeyLAlt:              "LAlt",
	KeyLGui:              "LGui",
	KeyRCtrl:             "RCtrl",
	KeyRShift:            "RShift",
	KeyRAlt:              "RAlt",
	KeyRGui:              "RGui",
	KeyMode:              "Mode",
	KeyAudioNext:         "AudioNext",
	KeyAudioPrev:         "AudioPrev",
	KeyAudioStop:         "AudioStop",
	KeyAudioPlay:         "AudioPlay",
	KeyAudioMute:         "AudioMute",
	KeyMediaSelect:       "MediaSelect",
	KeyWww:               "Www",
	KeyMail:              "Mail",
	KeyCalculator:        "Calculator",
	KeyComputer:          "Computer",
	KeyAcSearch:          "AcSearch",
	KeyAcHome:            "AcHome",
	KeyAcBack:            "AcBack",
	KeyAcForward:         "AcForward",
	KeyAcStop:            "AcStop",
	KeyAcRefresh:         "AcRefresh",
	KeyAcBookmarks:       "AcBookmarks",
	KeyBrightnessDown:    "BrightnessDown",
	KeyBrightnessUp:      "BrightnessUp",
	KeyDisplaySwitch:     "DisplaySwitch",
	KeyKbdIllumToggle:    "KbdIllumToggle",
	KeyKbdIllumDown:      "KbdIllumDown",
	KeyKbdIllumUp:        "KbdIllumUp",
	KeyEject:             "Eject",
	KeySleep:             "Sleep",
}

// keysByName is the reverse of keyNames, keyed by lowercased display name,
// plus common aliases users write in keymap files.
var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[strings.ToLower(name)] = k
	}
	m["enter"] = KeyReturn
	m["esc"] = KeyEscape
	m["del"] = KeyDelete
	m["pgup"] = KeyPageUp
	m["pgdn"] = KeyPageDown
	return m
}()

// KeyFromCode decodes a raw SDL keycode. Codes with no defined key decode
// to KeyUnknown; decoding never fails.
func KeyFromCode(code uint32) Key {
	if _, ok := keyNames[Key(code)]; ok {
		return Key(code)
	}
	return KeyUnknown
}

// Code returns the key's SDL keycode. For every defined key,
// KeyFromCode(k.Code()) == k.
func (k Key) Code() uint32 {
	return uint32(k)
}

// IsDefined returns true if k is one of the enumerated keys.
func (k Key) IsDefined() bool {
	_, ok := keyNames[k]
	return ok
}

// String returns the key's display name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// KeyFromName returns the key with the given display name
// (case-insensitive). Unrecognized names return KeyUnknown.
func KeyFromName(name string) Key {
	if k, ok := keysByName[strings.ToLower(name)]; ok {
		return k
	}
	return KeyUnknown
}
