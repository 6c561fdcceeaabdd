package transliteration

// The two tables below are authored independently and are not inverses of
// each other. Both v and w map to व, but व maps back only to v; z and j both
// map to ज. Outputs are search aids, not display strings.

const (
	virama = '्'
	nukta  = '़'
)

// maxRomanKeyLen bounds the greedy scan; no key in romanToNagari is longer.
const maxRomanKeyLen = 3

// romanToNagari maps 1-3 lowercase Roman letters to a Devanagari cluster.
var romanToNagari = map[string]string{
	// three letters
	"ksh": "क्ष", "gya": "ज्ञ", "dny": "ज्ञ", "shr": "श्र", "chh": "छ",

	// two letters
	"aa": "आ", "ee": "ई", "ii": "ई", "oo": "ऊ", "uu": "ऊ", "ai": "ऐ", "au": "औ",
	"kh": "ख", "gh": "घ", "ch": "च", "jh": "झ", "th": "थ", "dh": "ध",
	"ph": "फ", "bh": "भ", "sh": "श",

	// one letter
	"a": "अ", "i": "इ", "u": "उ", "e": "ए", "o": "ओ",
	"k": "क", "c": "क", "q": "क", "g": "ग", "j": "ज", "z": "ज",
	"t": "त", "d": "द", "n": "न", "p": "प", "f": "फ", "b": "ब", "m": "म",
	"y": "य", "r": "र", "l": "ल", "v": "व", "w": "व", "s": "स", "h": "ह",
	"x": "क्स",
}

// nagariToRoman maps a single Devanagari code point to Roman text. Consonants
// carry no inherent vowel; matras map to their short Roman vowel so that
// मिरची reads as "mirchi".
var nagariToRoman = map[rune]string{
	// independent vowels
	'अ': "a", 'आ': "aa", 'इ': "i", 'ई': "ee", 'उ': "u", 'ऊ': "oo", 'ऋ': "ru",
	'ए': "e", 'ऐ': "ai", 'ओ': "o", 'औ': "au", 'ऍ': "e", 'ऑ': "o",

	// consonants
	'क': "k", 'ख': "kh", 'ग': "g", 'घ': "gh", 'ङ': "n",
	'च': "ch", 'छ': "chh", 'ज': "j", 'झ': "jh", 'ञ': "n",
	'ट': "t", 'ठ': "th", 'ड': "d", 'ढ': "dh", 'ण': "n",
	'त': "t", 'थ': "th", 'द': "d", 'ध': "dh", 'न': "n",
	'प': "p", 'फ': "ph", 'ब': "b", 'भ': "bh", 'म': "m",
	'य': "y", 'र': "r", 'ल': "l", 'व': "v", 'श': "sh", 'ष': "sh",
	'स': "s", 'ह': "h", 'ळ': "l",
	// nukta forms that NFC keeps composed
	'ऩ': "n", 'ऱ': "r", 'ऴ': "l",

	// dependent vowel signs
	'ा': "a", 'ि': "i", 'ी': "i", 'ु': "u", 'ू': "u", 'ृ': "ru",
	'े': "e", 'ै': "ai", 'ो': "o", 'ौ': "au", 'ॅ': "e", 'ॉ': "o",

	// signs
	'ं': "n", 'ँ': "n", 'ः': "h", 'ऽ': "",
	virama: "", nukta: "",

	// digits
	'०': "0", '१': "1", '२': "2", '३': "3", '४': "4",
	'५': "5", '६': "6", '७': "7", '८': "8", '९': "9",
}
