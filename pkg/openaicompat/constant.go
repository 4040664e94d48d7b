package openaicompat

import "time"

// Known providers speaking the OpenAI chat completions protocol.
const (
	ProviderOpenAI   = "openai"
	ProviderQwen     = "qwen"
	ProviderDeepSeek = "deepseek"
)

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

var defaultBaseURLs = map[string]string{
	ProviderOpenAI:   "https://api.openai.com/v1",
	ProviderQwen:     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	ProviderDeepSeek: "https://api.deepseek.com/v1",
}

var defaultModels = map[string]string{
	ProviderOpenAI:   "gpt-4o-mini",
	ProviderQwen:     "qwen-plus",
	ProviderDeepSeek: "deepseek-chat",
}
