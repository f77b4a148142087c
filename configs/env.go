package configs

import (
	"bytes"
	_ "embed"

	"github.com/spf13/viper"

	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/resource"
)

//go:embed application.yml
var applicationYAML []byte

//go:embed messages.yml
var messagesYAML []byte

type EnvConfig struct {
	ApplicationName    string
	PropertiesFilePath string
	MessagesFilePath   string
}

var Env *EnvConfig

func init() {
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName:    getStringOrDefault("APPLICATION_NAME", "go-weather"),
		PropertiesFilePath: viper.GetString("PROPERTIES_FILE_PATH"),
		MessagesFilePath:   viper.GetString("MESSAGES_FILE_PATH"),
	}

	if err := loadProperties(Env.PropertiesFilePath); err != nil {
		log.Fatalf("Fail to load properties: %v", err)
	}
	if err := loadMessages(Env.MessagesFilePath); err != nil {
		log.Fatalf("Fail to load messages: %v", err)
	}

	if Env.PropertiesFilePath != "" {
		log.Debug(msg.GetMessage("app.config-override", "properties", Env.PropertiesFilePath))
	}
	if Env.MessagesFilePath != "" {
		log.Debug(msg.GetMessage("app.config-override", "messages", Env.MessagesFilePath))
	}
}

// loadProperties reads the embedded application.yml unless a file path overrides it.
func loadProperties(path string) error {
	if path != "" {
		return resource.Init(path)
	}
	return resource.Load(bytes.NewReader(applicationYAML))
}

func loadMessages(path string) error {
	if err := msg.Load(bytes.NewReader(messagesYAML)); err != nil {
		return err
	}
	// keys missing from the override keep their embedded text
	if path != "" {
		return msg.Init(path)
	}
	return nil
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
