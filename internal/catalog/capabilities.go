// ABOUTME: Static package name to known-symbol lookup table
// ABOUTME: Extending coverage is a data change here, never a code change

package catalog

// capabilities maps well-known package names to the symbols users most
// often reach for. Unknown names get an empty list.
var capabilities = map[string][]string{
	"http":            {"get", "post", "put", "delete", "Client", "Response"},
	"args":            {"ArgParser", "ArgResults"},
	"path":            {"join", "basename", "dirname", "extension", "normalize"},
	"collection":      {"groupBy", "ListEquality", "MapEquality", "PriorityQueue"},
	"intl":            {"DateFormat", "NumberFormat", "Intl"},
	"logging":         {"Logger", "Level", "LogRecord"},
	"meta":            {"required", "protected", "immutable", "visibleForTesting"},
	"crypto":          {"md5", "sha1", "sha256", "Hmac"},
	"uuid":            {"Uuid"},
	"yaml":            {"loadYaml", "YamlMap", "YamlList"},
	"json_annotation": {"JsonSerializable", "JsonKey"},
	"test":            {"test", "group", "expect", "setUp", "tearDown"},
	"mockito":         {"Mock", "when", "verify", "any"},
	"equatable":       {"Equatable", "EquatableMixin"},
	"rxdart":          {"BehaviorSubject", "PublishSubject", "Rx"},
}

// CapabilitiesFor returns the known symbols for a package name, or nil for
// unknown names.
func CapabilitiesFor(name string) []string {
	return capabilities[name]
}
