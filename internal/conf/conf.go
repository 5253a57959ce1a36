package conf

// Bootstrap is the server configuration scanned from the kratos config file.
type Bootstrap struct {
	Server *Server
	Radar  *Radar
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

// Radar configures the analysis pipeline.
type Radar struct {
	Llm         *LLM         `json:"llm"`
	Search      *Search      `json:"search"`
	ExportDir   string       `json:"export_dir"`
	Log         *Log         `json:"log"`
	Concurrency *Concurrency `json:"concurrency"`
	Db          *DB          `json:"db"`
}

type LLM struct {
	Provider string `json:"provider"`
	BaseUrl  string `json:"base_url"`
	ApiKey   string `json:"api_key"`
	Model    string `json:"model"`
}

type Search struct {
	Provider string  `json:"provider"`
	Serper   *Serper `json:"serper"`
	Tavily   *Tavily `json:"tavily"`
	Enrich   bool    `json:"enrich"`
}

type Serper struct {
	ApiKey string `json:"api_key"`
}

type Tavily struct {
	ApiKey string `json:"api_key"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}

type DB struct {
	Host     string `json:"host"`
	Port     int32  `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Name     string `json:"name"`
}
