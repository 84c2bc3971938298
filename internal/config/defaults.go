package config

const (
	defaultCatalogPath          = "acgnai-voice.json"
	defaultOutputPath           = "acgnai-voice-elite.json"
	defaultLogDir               = "~/.local/share/voxpick/logs"
	defaultMinEmotionCount      = 6
	defaultPromptOutputDir      = "qwen3_tts_voices"
	defaultPromptAPIURL         = "http://127.0.0.1:8000"
	defaultPromptRequestTimeout = 300
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// defaultBannedTags disqualify any character whose tag contains one of them.
// Covers common simplified and traditional spellings.
var defaultBannedTags = []string{
	"普通", "平民", "龙套", "龍套", "路人", "村民",
	"士兵", "卫兵", "守卫", "男", "女",
	"怪物", "生物", "纯水精灵", "元素生命", "丘丘人",
}

// defaultBannedNames are name segments that mark a record as filler.
var defaultBannedNames = []string{
	"NPC", "系统", "旁白", "未知", "大叔", "小孩", "少女",
}

// defaultExcludedLanguages drop keys for non-target-language variants before
// any merging happens.
var defaultExcludedLanguages = []string{
	"_en", "_ja", "english", "japanese", "英语", "日语",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CatalogPath: defaultCatalogPath,
			OutputPath:  defaultOutputPath,
			LogDir:      defaultLogDir,
		},
		Curation: Curation{
			MinEmotionCount:   defaultMinEmotionCount,
			BannedTags:        append([]string(nil), defaultBannedTags...),
			BannedNames:       append([]string(nil), defaultBannedNames...),
			ExcludedLanguages: append([]string(nil), defaultExcludedLanguages...),
		},
		Prompts: Prompts{
			OutputDir:      defaultPromptOutputDir,
			APIURL:         defaultPromptAPIURL,
			RequestTimeout: defaultPromptRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
