package parser

// flightKeywords is the fixed multilingual vocabulary that marks an event as
// travel-related. Matched as lowercase substrings, so short entries like
// "vol" deliberately also hit "volo" and "vuelo" variants.
var flightKeywords = []string{
	// English
	"flight",
	"departure",
	"airport",
	"terminal",
	"gate",
	"boarding",
	"check-in",
	// Spanish
	"vuelo",
	"aeropuerto",
	"embarque",
	// French
	"vol",
	"aéroport",
	"embarquement",
	// German
	"flug",
	"flughafen",
	"abflug",
	// Italian
	"volo",
	"aeroporto",
	"imbarco",
	// Thai (transliterated)
	"sanam bin",
	"thiao bin",
	"khuen khrueang",
}
