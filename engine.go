package metasearch

// Engine identifies a search engine a result was retrieved from.
type Engine string

// Supported search engines.
const (
	EngineGoogle     Engine = "Google"
	EngineYahoo      Engine = "Yahoo"
	EngineBing       Engine = "Bing"
	EngineYandex     Engine = "Yandex"
	EngineDuckDuckGo Engine = "DuckDuckGo"
)

// Engines lists every supported engine in enumeration order.
var Engines = []Engine{
	EngineGoogle,
	EngineYahoo,
	EngineBing,
	EngineYandex,
	EngineDuckDuckGo,
}

// Valid reports whether e is one of the supported engines.
// Matching is case-sensitive.
func (e Engine) Valid() bool {
	for _, known := range Engines {
		if e == known {
			return true
		}
	}
	return false
}

// ParseEngine returns the Engine named s.
// Returns EUNKNOWNENGINE if s is not a supported engine name.
func ParseEngine(s string) (Engine, error) {
	e := Engine(s)
	if !e.Valid() {
		return "", Errorf(EUNKNOWNENGINE, "unknown search engine %q", s)
	}
	return e, nil
}
