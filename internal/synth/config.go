package synth

import (
	"encoding/json"
	"fmt"
	"strings"
)

// defaultSplashColor is the brand fallback applied when the caller supplies
// no primary color.
const defaultSplashColor = "#0f172a"

// ConfigOptions carries the caller-supplied naming for config generation.
// Framework is informational only; the generated config is framework
// invariant apart from the web directory the caller passes in.
type ConfigOptions struct {
	AppID        string
	AppName      string
	WebDir       string
	Framework    string
	PrimaryColor string
}

type Script struct {
	Name    string `json:"name"`
	Command string `json:"command"`
}

// ConfigResult is the full output of config synthesis. ConfigText is the
// literal capacitor.config.json payload; the field names and nesting inside
// it are a compatibility surface consumed by the Capacitor CLI and must not
// change shape.
type ConfigResult struct {
	ConfigText       string   `json:"configText"`
	Scripts          []Script `json:"scripts"`
	Permissions      string   `json:"permissions"`
	GitignoreEntries []string `json:"gitignoreEntries"`
	SetupGuide       string   `json:"setupGuide"`
}

// capacitorConfig mirrors the capacitor.config.json schema. Serialization
// goes through this struct rather than a map so key order is fixed across
// calls.
type capacitorConfig struct {
	AppID             string        `json:"appId"`
	AppName           string        `json:"appName"`
	WebDir            string        `json:"webDir"`
	BundledWebRuntime bool          `json:"bundledWebRuntime"`
	Server            serverConfig  `json:"server"`
	IOS               iosConfig     `json:"ios"`
	Plugins           pluginConfigs `json:"plugins"`
}

type serverConfig struct {
	AndroidScheme string `json:"androidScheme"`
	IOSScheme     string `json:"iosScheme"`
}

type iosConfig struct {
	ContentInset  string `json:"contentInset"`
	ScrollEnabled bool   `json:"scrollEnabled"`
}

type pluginConfigs struct {
	SplashScreen splashScreenConfig `json:"SplashScreen"`
	StatusBar    statusBarConfig    `json:"StatusBar"`
}

type splashScreenConfig struct {
	LaunchShowDuration int    `json:"launchShowDuration"`
	LaunchAutoHide     bool   `json:"launchAutoHide"`
	BackgroundColor    string `json:"backgroundColor"`
	ShowSpinner        bool   `json:"showSpinner"`
}

type statusBarConfig struct {
	Style string `json:"style"`
}

var packageScripts = []Script{
	{Name: "cap:build", Command: "npm run build && npx cap sync"},
	{Name: "cap:sync", Command: "npx cap sync"},
	{Name: "cap:ios", Command: "npx cap open ios"},
	{Name: "cap:android", Command: "npx cap open android"},
}

var gitignoreEntries = []string{
	"ios/App/Pods/",
	"ios/App/build/",
	"ios/App/App.xcworkspace/xcuserdata/",
	"android/.gradle/",
	"android/app/build/",
	"android/build/",
	"android/local.properties",
}

// RenderConfig builds the full Capacitor configuration payload for the given
// options. Pure: equal options produce byte-identical output.
func RenderConfig(options ConfigOptions) (*ConfigResult, error) {
	splashColor := options.PrimaryColor
	if splashColor == "" {
		splashColor = defaultSplashColor
	}

	config := capacitorConfig{
		AppID:             options.AppID,
		AppName:           options.AppName,
		WebDir:            options.WebDir,
		BundledWebRuntime: false,
		Server: serverConfig{
			AndroidScheme: "https",
			IOSScheme:     "https",
		},
		IOS: iosConfig{
			ContentInset:  "automatic",
			ScrollEnabled: true,
		},
		Plugins: pluginConfigs{
			SplashScreen: splashScreenConfig{
				LaunchShowDuration: 2000,
				LaunchAutoHide:     true,
				BackgroundColor:    splashColor,
				ShowSpinner:        false,
			},
			StatusBar: statusBarConfig{
				Style: "DARK",
			},
		},
	}

	serialized, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing capacitor config: %w", err)
	}
	configText := string(serialized) + "\n"

	return &ConfigResult{
		ConfigText:       configText,
		Scripts:          packageScripts,
		Permissions:      permissionsTemplate,
		GitignoreEntries: gitignoreEntries,
		SetupGuide:       setupGuide(configText),
	}, nil
}

// setupGuide is assembled from the serialized config, the scripts block and
// fixed prose; it carries no independently generated content.
func setupGuide(configText string) string {
	var sb strings.Builder
	sb.WriteString("# Capacitor Setup Guide\n\n")
	sb.WriteString("## capacitor.config.json\n\n")
	sb.WriteString("```json\n")
	sb.WriteString(configText)
	sb.WriteString("```\n\n")
	sb.WriteString("## Package scripts\n\n")
	sb.WriteString("```json\n")
	for i, script := range packageScripts {
		comma := ","
		if i == len(packageScripts)-1 {
			comma = ""
		}
		fmt.Fprintf(&sb, "%q: %q%s\n", script.Name, script.Command, comma)
	}
	sb.WriteString("```\n\n")
	sb.WriteString(setupProse)

	return sb.String()
}
