package classify

// extInfo seeds classification from a filename extension.
type extInfo struct {
	FileType string
	Mime     string
	Language string
	Binary   bool
}

// extTable is the static extension lookup. Extensions are lowercase without
// the leading dot.
var extTable = map[string]extInfo{
	"go":    {"Go source", "text/x-go", "go", false},
	"rs":    {"Rust source", "text/x-rust", "rust", false},
	"py":    {"Python source", "text/x-python", "python", false},
	"js":    {"JavaScript source", "text/javascript", "javascript", false},
	"ts":    {"TypeScript source", "text/typescript", "typescript", false},
	"java":  {"Java source", "text/x-java", "java", false},
	"c":     {"C source", "text/x-c", "c", false},
	"cpp":   {"C++ source", "text/x-c++", "c++", false},
	"cc":    {"C++ source", "text/x-c++", "c++", false},
	"h":     {"C/C++ header", "text/x-c", "c/c++", false},
	"cs":    {"C# source", "text/x-csharp", "c#", false},
	"rb":    {"Ruby source", "text/x-ruby", "ruby", false},
	"php":   {"PHP source", "text/x-php", "php", false},
	"sh":    {"Shell script", "text/x-shellscript", "shell", false},
	"pl":    {"Perl source", "text/x-perl", "perl", false},
	"lua":   {"Lua source", "text/x-lua", "lua", false},
	"sql":   {"SQL", "application/sql", "sql", false},
	"kt":    {"Kotlin source", "text/x-kotlin", "kotlin", false},
	"swift": {"Swift source", "text/x-swift", "swift", false},
	"json":  {"JSON data", "application/json", "", false},
	"xml":   {"XML data", "application/xml", "", false},
	"yaml":  {"YAML data", "application/x-yaml", "", false},
	"yml":   {"YAML data", "application/x-yaml", "", false},
	"toml":  {"TOML config", "application/toml", "", false},
	"csv":   {"CSV data", "text/csv", "", false},
	"md":    {"Markdown", "text/markdown", "", false},
	"txt":   {"Plain text", "text/plain", "", false},
	"html":  {"HTML", "text/html", "html", false},
	"htm":   {"HTML", "text/html", "html", false},
	"css":   {"CSS", "text/css", "css", false},
	"bin":   {"Binary data", "application/octet-stream", "", true},
	"exe":   {"Executable", "application/x-executable", "", true},
	"dll":   {"Executable", "application/x-executable", "", true},
	"so":    {"Shared library", "application/x-sharedlib", "", true},
	"png":   {"PNG image", "image/png", "", true},
	"jpg":   {"JPEG image", "image/jpeg", "", true},
	"jpeg":  {"JPEG image", "image/jpeg", "", true},
	"gif":   {"GIF image", "image/gif", "", true},
	"pdf":   {"PDF document", "application/pdf", "", true},
	"zip":   {"Archive", "application/zip", "", true},
	"tar":   {"Archive", "application/x-tar", "", true},
	"gz":    {"Archive", "application/gzip", "", true},
	"7z":    {"Archive", "application/x-7z-compressed", "", true},
}
