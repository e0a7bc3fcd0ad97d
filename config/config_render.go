package config

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/hop-protocol/hop-relay/log"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
	// typeMark is appended to unquoted vars so the file stays valid TOML while they are unresolved
	typeMark = ":int"
)

var (
	ErrCycleVars                 = fmt.Errorf("cycle vars")
	ErrMissingVars               = fmt.Errorf("missing vars")
	ErrUnsupportedConfigFileType = fmt.Errorf("unsupported config file type")

	// A = {{B}}
	bareVarRegexp = regexp.MustCompile(`=\s*\{\{([^}:]+)\}\}`)
	// A = "{{B:int}}"
	quotedMarkedVarRegexp = regexp.MustCompile(`=\s*\"\{\{([^}:]+:int)\}\}\"`)
	// {{B:int}}
	markedVarRegexp = regexp.MustCompile(`\{\{([^}:]+:int)\}\}`)
)

// FileData is the content of a config file, Name is only used for errors
type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges config files and replaces the {{var}} references.
// A var is resolved from the environment (EnvironmentPrefix_var) before the files.
type ConfigRender struct {
	// Files are merged in order, the last one wins
	FilesData []FileData
	// LookupEnvFunc is os.LookupEnv out of tests
	LookupEnvFunc     func(key string) (string, bool)
	EnvironmentPrefix string
}

func NewConfigRender(filesData []FileData, environmentPrefix string) *ConfigRender {
	return &ConfigRender{
		FilesData:         filesData,
		LookupEnvFunc:     os.LookupEnv,
		EnvironmentPrefix: environmentPrefix,
	}
}

// Render merges the files and resolves every var
func (c *ConfigRender) Render() (string, error) {
	merged, err := c.Merge()
	if err != nil {
		return "", fmt.Errorf("fail to merge files. Err: %w", err)
	}
	return c.ResolveVars(merged)
}

// Merge loads all the files in a single TOML document, vars are not resolved
func (c *ConfigRender) Merge() (string, error) {
	k := koanf.New(".")
	for _, file := range c.FilesData {
		content := markBareVars(file.Content)
		if err := k.Load(rawbytes.Provider([]byte(content)), toml.Parser()); err != nil {
			log.Errorf("error loading file %s. Err:%v. Content: %v", file.Name, err, content)
			return "", fmt.Errorf("fail to load file %s as toml. Err: %w", file.Name, err)
		}
	}
	marshaled, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("fail to marshal to toml. Err: %w", err)
	}
	return unquoteMarkedVars(string(marshaled)), nil
}

// ResolveVars replaces the vars of a merged document. Vars that reference other vars
// are resolved in successive passes.
func (c *ConfigRender) ResolveVars(merged string) (string, error) {
	tpl, defined, err := c.readTemplate(merged)
	if err != nil {
		return "", err
	}
	rendered := removeTypeMarks(c.execute(tpl, defined))

	if missing := c.missingVars(tpl, defined); len(missing) > 0 {
		return rendered, fmt.Errorf("missing vars: %v. Err: %w", missing, ErrMissingVars)
	}
	// every var is defined somewhere, so the ones left reference other vars
	resolved, err := c.resolveNested(rendered)
	if err != nil {
		return merged, err
	}
	return resolved, nil
}

// resolveNested renders again until no var is left. A pass that leaves as many vars
// as the previous one means they reference each other.
func (c *ConfigRender) resolveNested(partial string) (string, error) {
	data := unquoteMarkedVars(partial)
	pending := templateVars(data)
	if len(pending) == 0 {
		return partial, nil
	}
	log.Debugf("resolving nested vars: %v", pending)
	for len(pending) > 0 {
		previous := pending
		tpl, defined, err := c.readTemplate(data)
		if err != nil {
			log.Errorf("error reading template while resolving nested vars. Err: %v. Data:%s", err, data)
			return "", fmt.Errorf("fails to read template resolving nested vars. Err: %w", err)
		}
		data = removeTypeMarks(unquoteMarkedVars(c.execute(tpl, defined)))

		pending = templateVars(data)
		if len(pending) == len(previous) {
			return partial, fmt.Errorf("not resolved cycle vars: %v. Err: %w", pending, ErrCycleVars)
		}
	}
	return data, nil
}

// readTemplate parses data as a template and as TOML. Vars in data are expected
// unquoted: A={{B}}
func (c *ConfigRender) readTemplate(data string) (*fasttemplate.Template, map[string]interface{}, error) {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to load template. Err:%w", err)
	}
	content := markBareVars(data)
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(content)), toml.Parser()); err != nil {
		return nil, nil, fmt.Errorf("error parsing template values. Content: %s.  Err: %w", content, err)
	}
	return tpl, k.All(), nil
}

func (c *ConfigRender) execute(tpl *fasttemplate.Template, defined map[string]interface{}) string {
	return tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if v, ok := c.lookupEnv(tag); ok {
			return w.Write([]byte(v))
		}
		if v, ok := defined[tag]; ok {
			return w.Write([]byte(fmt.Sprintf("%v", v)))
		}
		return w.Write([]byte(startTag + tag + endTag))
	})
}

func (c *ConfigRender) missingVars(tpl *fasttemplate.Template, defined map[string]interface{}) []string {
	var missing []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if _, ok := c.lookupEnv(tag); ok {
			return 0, nil
		}
		if _, ok := defined[tag]; !ok && !contains(missing, tag) {
			missing = append(missing, tag)
		}
		return 0, nil
	})
	return missing
}

func (c *ConfigRender) lookupEnv(tag string) (string, bool) {
	return c.LookupEnvFunc(c.EnvironmentPrefix + "_" + strings.ReplaceAll(tag, ".", "_"))
}

func templateVars(data string) []string {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return []string{}
	}
	var vars []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		vars = append(vars, tag)
		return 0, nil
	})
	return vars
}

func contains(vars []string, search string) bool {
	for _, v := range vars {
		if v == search {
			return true
		}
	}
	return false
}

// A = {{B}} becomes A = "{{B:int}}"
func markBareVars(data string) string {
	return bareVarRegexp.ReplaceAllString(data, `= "{{${1}`+typeMark+`}}"`)
}

// A = "{{B:int}}" becomes A = {{B}}
func unquoteMarkedVars(data string) string {
	return quotedMarkedVarRegexp.ReplaceAllStringFunc(data, func(match string) string {
		name := quotedMarkedVarRegexp.FindStringSubmatch(match)[1]
		return "= " + startTag + strings.TrimSuffix(name, typeMark) + endTag
	})
}

// {{B:int}} becomes {{B}}
func removeTypeMarks(data string) string {
	return markedVarRegexp.ReplaceAllStringFunc(data, func(match string) string {
		name := markedVarRegexp.FindStringSubmatch(match)[1]
		return startTag + strings.TrimSuffix(name, typeMark) + endTag
	})
}

func readFileToString(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// convertFileToToml converts json files, unknown extensions are assumed to be TOML
func convertFileToToml(fileData string, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "json":
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider([]byte(fileData)), json.Parser()); err != nil {
			return fileData, fmt.Errorf("error loading json file. Err: %w", err)
		}
		tomlData, err := toml.Parser().Marshal(k.Raw())
		if err != nil {
			return fileData, fmt.Errorf("error converting json to toml. Err: %w", err)
		}
		return string(tomlData), nil
	case "yml", "yaml", "ini":
		return fileData, fmt.Errorf("cant convert from %s to TOML. Err: %w", fileType, ErrUnsupportedConfigFileType)
	default:
		log.Warnf("filetype %s unknown, assuming is a TOML file", fileType)
		return fileData, nil
	}
}
