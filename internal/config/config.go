package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Folio"
	AppID             = "com.github.tartampluch.go-folio"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the log file.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the app cache directory.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Preferences
// -----------------------------------------------------------------------------

const (
	// Preference Keys
	PrefTheme         = "theme"
	PrefLanguage      = "language"
	PrefServerPort    = "server_port"
	PrefContactTarget = "contact_target"
	PrefLastRun       = "last_run_version"
)

// Theme preference values. Exactly two; anything else is treated as unset.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// SupportedLanguages defines the fallback list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Résumé Data & Rendering
// -----------------------------------------------------------------------------

const (
	// FormatYearSpan renders an entry's years as "2019–2023" (en dash).
	FormatYearSpan = "%d–%d"

	// DetailBullet prefixes each detail line on a card.
	DetailBullet = "• "

	// UID Generation (timeline export)
	UIDSalt         = "go-folio-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%d"
	FormatUID       = "%s-%d@%s"
	ICalDomain      = "gofolio"
)

// -----------------------------------------------------------------------------
// Contact Form & Mailto
// -----------------------------------------------------------------------------

const (
	// MailtoScheme is the URL scheme the composer hands to the system mail client.
	MailtoScheme = "mailto:"

	// DefaultRecipient is the fallback address when the configured contact
	// target is missing or not a mailto URL.
	DefaultRecipient = "hello@tartampluch.dev"

	// Query parameter keys of the generated mailto URL, in emission order.
	ParamSubject = "Subject"
	ParamName    = "Name"
	ParamEmail   = "Email"
	ParamMessage = "Message"

	// RuleEmail is the go-playground/validator tag applied to the email field.
	RuleEmail = "required,email"
)

// Owner identity used for the exported contact card.
const (
	OwnerName     = "Tartampluch"
	OwnerTitle    = "Software Engineer"
	OwnerLocation = "Lyon, France"
	OwnerSiteURL  = "https://tartampluch.dev"
)

// -----------------------------------------------------------------------------
// UI Constants
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 760
	MainWindowHeight    = 560
	SettingsWindowWidth = 520
	LayoutColumnsDouble = 2
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle    = "win_title"
	TKeyWinSettings = "win_settings_title"

	// Navigation
	TKeyNavResume   = "nav_resume"
	TKeyNavContact  = "nav_contact"
	TKeyNavSettings = "nav_settings"

	// Greeting (time-of-day dayparts)
	TKeyGreetNight     = "greet_night"
	TKeyGreetMorning   = "greet_morning"
	TKeyGreetAfternoon = "greet_afternoon"
	TKeyGreetEvening   = "greet_evening"

	// Theme toggle labels: what the control offers to switch TO.
	TKeyThemeToDark  = "theme_to_dark"
	TKeyThemeToLight = "theme_to_light"

	// Résumé view
	TKeyBadgeWork      = "badge_work"
	TKeyBadgeEducation = "badge_education"
	TKeyLblIncludeWork = "lbl_include_work"
	TKeyLblIncludeEdu  = "lbl_include_education"
	TKeyLblFromYear    = "lbl_from_year"
	TKeyLblToYear      = "lbl_to_year"
	TKeyBtnReset       = "btn_reset"
	TKeyMsgNoMatch     = "msg_no_match"

	// Contact form
	TKeyLblName       = "lbl_name"
	TKeyLblEmail      = "lbl_email"
	TKeyLblSubject    = "lbl_subject"
	TKeyLblMessage    = "lbl_message"
	TKeyLblConsent    = "lbl_consent"
	TKeyBtnSend       = "btn_send"
	TKeyBtnClear      = "btn_clear"
	TKeyErrNameReq    = "err_name_required"
	TKeyErrEmailReq   = "err_email_required"
	TKeyErrEmailBad   = "err_email_invalid"
	TKeyErrSubjectReq = "err_subject_required"
	TKeyErrMessageReq = "err_message_required"
	TKeyErrConsentReq = "err_consent_required"

	// Settings
	TKeyLblLanguage  = "lbl_language"
	TKeyHelpLanguage = "help_language"
	TKeyLblTarget    = "lbl_contact_address"
	TKeyHelpTarget   = "help_contact_address"
	TKeyLblPort      = "lbl_server_port"
	TKeyHelpPort     = "help_port"
	TKeyLblGeneral   = "lbl_general"
	TKeyBtnSave      = "btn_save"
	TKeyBtnCancel    = "btn_cancel"
	TKeyLblFooter    = "lbl_footer"

	// Validation Errors (Settings)
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"

	// Timeline export
	TKeyEvtSummary = "event_summary" // Requires Title, Organization
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18080"
	DefaultLanguage = "en"

	// Greeting boundaries (hour of day, half-open intervals).
	GreetNightEnd     = 5  // [0,5) night
	GreetMorningEnd   = 12 // [5,12) morning
	GreetAfternoonEnd = 18 // [12,18) afternoon
	GreetEveningEnd   = 22 // [18,22) evening; [22,24) night again
	HoursPerDay       = 24
)

// Fallback greeting labels used when the localizer is unavailable.
const (
	FallbackGreetNight     = "Good night"
	FallbackGreetMorning   = "Good morning"
	FallbackGreetAfternoon = "Good afternoon"
	FallbackGreetEvening   = "Good evening"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Folio//Engine//EN"
	ICalCalName = "Career Timeline"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDescription = "DESCRIPTION"
	PropLocation    = "LOCATION"
	PropDTStart     = "DTSTART"
	PropDTEnd       = "DTEND"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	DefaultICalRefresh = 24 * time.Hour

	FallbackEvtSummary = "%s — %s"

	// StubVCalendar is the minimal valid iCalendar object used when the
	// dataset is empty, so feed clients never see an invalid document.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Limits
// -----------------------------------------------------------------------------

const (
	MinPort = 1
	MaxPort = 65535
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteTimeline      = "/career.ics"
	RouteContactCard   = "/contact.vcf"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeTextVCard       = "text/vcard; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrPortNumber     = "server port must be a number"
	ErrPortRange      = "server port must be between 1 and 65535"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrVCardEncode    = "failed to encode vCard data"
	ErrMailtoOpen     = "failed to open mail client"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLocNotInit     = "localizer not initialized"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Content initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgNotFound     = "Not Found"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgServerListen   = "Share server listening"
	MsgServerStop     = "Shutting down share server..."
	MsgCacheUpdated   = "Served document updated"
	MsgThemeApplied   = "Theme applied"
	MsgThemeStoreFail = "Theme preference write skipped"
	MsgNavToggled     = "Navigation toggled"
	MsgGreetingSet    = "Greeting computed"
	MsgResumeRendered = "Résumé rendered"
	MsgTimelineMade   = "Timeline encoded"
	MsgFilterReset    = "Filters reset to dataset bounds"
	MsgFormValidated  = "Contact form validated"
	MsgMailtoOpened   = "Mail client requested"
	MsgSavingPrefs    = "Saving preferences"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgLogWarning     = "Warning: %s at %s: %v\n"

	TitleStartupError = "Startup Error"
	MsgPortBusy       = "Port %s is busy or unavailable."
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyRoute     = "route"
	LogKeyTheme     = "theme"
	LogKeyOpen      = "open"
	LogKeyValid     = "valid"
	LogKeyHour      = "hour"
	LogKeyCount     = "count"
	LogKeyFromYear  = "from_year"
	LogKeyToYear    = "to_year"
	LogKeyWork      = "include_work"
	LogKeyEducation = "include_education"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyValue     = "value"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI        = "ui"
	CompUIResume  = "ui_resume"
	CompUIContact = "ui_contact"
	CompUISet     = "ui_settings"
	CompEngine    = "engine"
	CompContact   = "contact"
	CompServer    = "server"
	CompMain      = "main"
	CompI18n      = "i18n"
)
