package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/hop-protocol/hop-relay/chains"
	"github.com/hop-protocol/hop-relay/config/types"
	"github.com/hop-protocol/hop-relay/etherman"
	"github.com/hop-protocol/hop-relay/indexer"
	"github.com/hop-protocol/hop-relay/log"
	"github.com/hop-protocol/hop-relay/relayer"
	"github.com/hop-protocol/hop-relay/transferroot"
	"github.com/hop-protocol/hop-relay/withdrawal"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagComponents is the flag for components.
	FlagComponents = "components"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"

	EnvVarPrefix       = "HOP"
	ConfigType         = "toml"
	SaveConfigFileName = "hop_relay_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)
)

/*
Config represents the configuration of the hop relay
The file is [TOML format]

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config
	// L1ChainID is the chain every configured chain settles on
	L1ChainID uint64
	// L1URL is the L1 RPC used by the chains that do not set their own
	L1URL string
	// Retry is the RPC retry policy of the chains that do not set their own
	Retry etherman.RetryConfig
	// Signer is the keystore of the chains that do not set their own
	Signer types.KeystoreFileConfig
	// Chains are the L2 chains whose messages are relayed
	Chains []chains.Config
	// Indexer is the configuration of the subgraph client
	Indexer indexer.Config
	// TransferRoot is the configuration of the transfer root reconstruction
	TransferRoot transferroot.Config
	// Withdrawal is the configuration of the withdrawal proof builder
	Withdrawal withdrawal.Config
	// Relayer is the configuration of the message relayer
	Relayer relayer.Config
	// RPC is the config for the RPC server
	RPC jRPC.Config
}

// Validate checks the configuration and fills every chain with the shared L1 settings
func (c *Config) Validate() error {
	if c.L1ChainID == 0 {
		return fmt.Errorf("L1ChainID is required")
	}
	if c.Indexer.Retry == (etherman.RetryConfig{}) {
		c.Indexer.Retry = c.Retry
	}
	seen := make(map[uint64]struct{}, len(c.Chains))
	for i := range c.Chains {
		chain := &c.Chains[i]
		if chain.L1ChainID == 0 {
			chain.L1ChainID = c.L1ChainID
		}
		if chain.L1ChainID != c.L1ChainID {
			return fmt.Errorf("chain %d settles on %d, expected L1 %d", chain.ChainID, chain.L1ChainID, c.L1ChainID)
		}
		if chain.L1URL == "" {
			chain.L1URL = c.L1URL
		}
		if chain.Retry == (etherman.RetryConfig{}) {
			chain.Retry = c.Retry
		}
		if chain.Signer == (types.KeystoreFileConfig{}) {
			chain.Signer = c.Signer
		}
		if err := chain.Validate(); err != nil {
			return err
		}
		if _, ok := seen[chain.ChainID]; ok {
			return fmt.Errorf("chain %d is configured twice", chain.ChainID)
		}
		seen[chain.ChainID] = struct{}{}
	}
	return nil
}

// Load loads the configuration
func Load(ctx *cli.Context) (*Config, error) {
	configFilePath := ctx.StringSlice(FlagCfg)
	filesData, err := readFiles(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	return LoadFile(filesData, saveConfigPath)
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0)
	for _, file := range files {
		fileContent, err := readFileToString(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileExtension := getFileExtension(file)
		if fileExtension != ConfigType {
			fileContent, err = convertFileToToml(fileContent, fileExtension)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, fileExtension, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

func getFileExtension(fileName string) string {
	return fileName[strings.LastIndex(fileName, ".")+1:]
}

// LoadFileFromString decodes an already rendered configuration
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	err := loadString(cfg, configFileData, configType, true, EnvVarPrefix)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile merges the defaults with files, renders the vars and decodes the result
func LoadFile(files []FileData, saveConfigPath string) (*Config, error) {
	fileData := make([]FileData, 0)
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	merger := NewConfigRender(fileData, EnvVarPrefix)

	renderedCfg, err := merger.Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, SaveConfigFileName)
		err = os.WriteFile(fullPath, []byte(renderedCfg), DefaultCreationFilePermissions)
		if err != nil {
			err = fmt.Errorf("error writing config file: %s. Err: %w", fullPath, err)
			log.Error(err)
			return nil, err
		}
	}
	return LoadFileFromString(renderedCfg, ConfigType)
}

func loadString(cfg *Config, configData string, configType string, allowEnvVars bool, envPrefix string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if allowEnvVars {
		replacer := strings.NewReplacer(".", "_")
		v.SetEnvKeyReplacer(replacer)
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	err := v.ReadConfig(bytes.NewBuffer([]byte(configData)))
	if err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(","))),
	}

	return v.Unmarshal(&cfg, decodeHooks...)
}
