package common

// Params holds the values given on the command line. Empty values fall back
// to the configuration file.
type Params struct {
	logLevel   string
	configPath string
	noHistory  bool
	rootPath   string
}

func NewEmptyParams() *Params {
	return &Params{
		logLevel:   "",
		configPath: DefaultConfigPath(),
		noHistory:  false,
		rootPath:   "",
	}
}

func NewParams(logLevel string, configPath string, noHistory bool, rootPath string) *Params {
	return &Params{
		logLevel:   logLevel,
		configPath: configPath,
		noHistory:  noHistory,
		rootPath:   rootPath,
	}
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) ConfigPath() string {
	return s.configPath
}

func (s *Params) NoHistory() bool {
	return s.noHistory
}

func (s *Params) RootPath() string {
	return s.rootPath
}

func (s *Params) SetRootPath(rootPath string) {
	s.rootPath = rootPath
}
