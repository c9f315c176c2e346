// Package settings defines application-level configuration data.
package settings

import "time"

// KeyMapConfig defines the configuration for keybindings.
// Multiple keys for one action are separated by commas.
type KeyMapConfig struct {
	Up          string `yaml:"up" kong:"help='Up key',default='k,up'"`
	Down        string `yaml:"down" kong:"help='Down key',default='j,down'"`
	Left        string `yaml:"left" kong:"help='Previous option key',default='h,left'"`
	Right       string `yaml:"right" kong:"help='Next option key',default='l,right'"`
	UpPage      string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u,pgup'"`
	DownPage    string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d,pgdown'"`
	Top         string `yaml:"top" kong:"help='Top key',default='g,home'"`
	Bottom      string `yaml:"bottom" kong:"help='Bottom key',default='G,end'"`
	TogglePanel string `yaml:"toggle_panel" kong:"help='Open/close the article parameters panel',default='p'"`
	NextField   string `yaml:"next_field" kong:"help='Focus next panel control',default='tab'"`
	PrevField   string `yaml:"prev_field" kong:"help='Focus previous panel control',default='shift+tab'"`
	Select      string `yaml:"select" kong:"help='Activate the focused control',default='enter'"`
	Apply       string `yaml:"apply" kong:"help='Apply panel selection',default='ctrl+s'"`
	Reset       string `yaml:"reset" kong:"help='Reset panel selection',default='ctrl+r'"`
	Back        string `yaml:"back" kong:"help='Back/close key',default='esc'"`
	OpenSource  string `yaml:"open_source" kong:"help='Open another document key',default='o'"`
	Forget      string `yaml:"forget" kong:"help='Forget the numbered recent source',default='ctrl+x'"`
	Reload      string `yaml:"reload" kong:"help='Reload document key',default='r'"`
	OpenLink    string `yaml:"open_link" kong:"help='Open article link in the browser',default='b'"`
	Quit        string `yaml:"quit" kong:"help='Quit key',default='q'"`
}

// ThemeConfig defines the colour theme of the application chrome.
type ThemeConfig struct {
	Accent       string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Border       string `yaml:"border" kong:"help='Panel border color',default='63'"`
	Muted        string `yaml:"muted" kong:"help='Muted text color',default='240'"`
	GlamourStyle string `yaml:"glamour_style" kong:"help='Markdown style (notty/ascii)',default='notty'"`
}

// Settings represents the application configuration.
type Settings struct {
	Source              string       `yaml:"source" kong:"help='Document path or feed URL (empty for the bundled sample)'"`
	Item                int          `yaml:"item" kong:"help='Feed entry index',default='0'"`
	RecentSources       []string     `yaml:"recent_sources" kong:"-"`
	KeyMap              KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme               ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	FetchTimeoutSeconds int          `yaml:"fetch_timeout_seconds" kong:"help='Feed fetch timeout in seconds',default='10'"`
	LogFile             string       `yaml:"log_file" kong:"help='Log file path (empty disables logging)'"`
	CacheFile           string       `yaml:"cache_file" kong:"help='Document cache database path'"`
}

// FetchTimeout returns the fetch timeout as a duration.
func (s Settings) FetchTimeout() time.Duration {
	if s.FetchTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.FetchTimeoutSeconds) * time.Second
}
