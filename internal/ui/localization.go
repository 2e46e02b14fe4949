package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyURLInput          = "url_input"
	KeyURLPlaceholder    = "url_placeholder"
	KeyURLCount          = "url_count"
	KeyURLCountEmpty     = "url_count_empty"
	KeySaveFolder        = "save_folder"
	KeyBrowse            = "browse"
	KeyQuality           = "quality"
	KeyRemoveWatermark   = "remove_watermark"
	KeyDownloadAll       = "download_all"
	KeyPause             = "pause"
	KeyResume            = "resume"
	KeyStop              = "stop"
	KeyWaiting           = "waiting"
	KeyLog               = "log"
	KeyNoValidURLs       = "no_valid_urls"
	KeyBatchStarted      = "batch_started"
	KeyItemStarted       = "item_started"
	KeyItemDownloading   = "item_downloading"
	KeyItemPercent       = "item_percent"
	KeyItemDone          = "item_done"
	KeyItemFailed        = "item_failed"
	KeyItemStopped       = "item_stopped"
	KeyBatchProgress     = "batch_progress"
	KeyBatchFinished     = "batch_finished"
	KeyPaused            = "paused"
	KeyResumed           = "resumed"
	KeyWaitingResume     = "waiting_resume"
	KeyStopRequested     = "stop_requested"
	KeyStoppedByUser     = "stopped_by_user"
	KeyComplete          = "complete"
	KeyAllSucceeded      = "all_succeeded"
	KeySomeFailed        = "some_failed"
	KeyBatchFinishedLog  = "batch_finished_log"
	KeyFile              = "file"
	KeyOpenFolder        = "open_folder"
	KeyLanguage          = "language"
	KeyErrorOpeningDir   = "error_opening_dir"
	KeyErrorCreatingDir  = "error_creating_dir"
	KeyFolderChanged     = "folder_changed"
	KeyDownloaderMissing = "downloader_missing"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the OS locale when it is supported.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// systemLanguage returns the two-letter language of the OS locale
func systemLanguage() string {
	locale := string(lang.SystemLocale())
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	return strings.ToLower(locale)
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if text, found := l.texts["en"][key]; found {
		return text
	}

	// Final fallback - return key itself
	return key
}

// Format returns localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ko": "한국어",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "TikTok Downloader",
		KeyURLInput:          "TikTok URLs (one per line)",
		KeyURLPlaceholder:    "https://www.tiktok.com/@user/video/...",
		KeyURLCount:          "URLs: %d (valid: %d)",
		KeyURLCountEmpty:     "URLs: 0",
		KeySaveFolder:        "Save folder:",
		KeyBrowse:            "Browse",
		KeyQuality:           "Quality:",
		KeyRemoveWatermark:   "Remove watermark",
		KeyDownloadAll:       "Download all",
		KeyPause:             "Pause",
		KeyResume:            "Resume",
		KeyStop:              "Stop",
		KeyWaiting:           "Waiting...",
		KeyLog:               "Log",
		KeyNoValidURLs:       "Please enter valid TikTok URLs.\nOne per line.",
		KeyBatchStarted:      "Batch download started: %d URLs",
		KeyItemStarted:       "%s Download started: %s",
		KeyItemDownloading:   "%s Downloading...",
		KeyItemPercent:       "%s Downloading... %.1f%%",
		KeyItemDone:          "%s Done!",
		KeyItemFailed:        "%s Failed: %s",
		KeyItemStopped:       "%s Interrupted",
		KeyBatchProgress:     "%d/%d done (failed: %d)",
		KeyBatchFinished:     "Finished: %d/%d (failed: %d)",
		KeyPaused:            "Download paused",
		KeyResumed:           "Download resumed",
		KeyWaitingResume:     "Paused, waiting to resume...",
		KeyStopRequested:     "Stop requested...",
		KeyStoppedByUser:     "Download was stopped by the user.",
		KeyComplete:          "Complete",
		KeyAllSucceeded:      "All downloads completed!\nSucceeded: %d/%d",
		KeySomeFailed:        "Downloads finished.\nSucceeded: %d/%d\nFailed: %d/%d",
		KeyBatchFinishedLog:  "Batch download finished - succeeded: %d, failed: %d",
		KeyFile:              "File",
		KeyOpenFolder:        "Open download folder",
		KeyLanguage:          "Language",
		KeyErrorOpeningDir:   "Error opening folder",
		KeyErrorCreatingDir:  "Cannot create download folder",
		KeyFolderChanged:     "Save folder: %s",
		KeyDownloaderMissing: "yt-dlp is not available: %s",
	}

	// Korean texts
	l.texts["ko"] = map[string]string{
		KeyAppTitle:          "TikTok 다운로더",
		KeyURLInput:          "TikTok URL 입력 (한 줄에 하나씩)",
		KeyURLPlaceholder:    "https://www.tiktok.com/@user/video/...",
		KeyURLCount:          "URL 개수: %d (유효: %d)",
		KeyURLCountEmpty:     "URL 개수: 0",
		KeySaveFolder:        "저장 폴더:",
		KeyBrowse:            "찾아보기",
		KeyQuality:           "화질:",
		KeyRemoveWatermark:   "워터마크 제거",
		KeyDownloadAll:       "전체 다운로드",
		KeyPause:             "일시정지",
		KeyResume:            "재개",
		KeyStop:              "중단",
		KeyWaiting:           "대기 중...",
		KeyLog:               "로그",
		KeyNoValidURLs:       "유효한 TikTok URL을 입력해주세요.\n한 줄에 하나씩 입력하세요.",
		KeyBatchStarted:      "일괄 다운로드 시작: %d개 URL",
		KeyItemStarted:       "%s 다운로드 시작: %s",
		KeyItemDownloading:   "%s 다운로드 중...",
		KeyItemPercent:       "%s 다운로드 중... %.1f%%",
		KeyItemDone:          "%s 완료!",
		KeyItemFailed:        "%s 실패: %s",
		KeyItemStopped:       "%s 중단됨",
		KeyBatchProgress:     "%d/%d 완료 (실패: %d)",
		KeyBatchFinished:     "완료: %d/%d (실패: %d)",
		KeyPaused:            "다운로드 일시정지됨",
		KeyResumed:           "다운로드 재개됨",
		KeyWaitingResume:     "일시정지됨, 재개 대기 중...",
		KeyStopRequested:     "다운로드 중단 요청됨...",
		KeyStoppedByUser:     "다운로드가 사용자에 의해 중단되었습니다.",
		KeyComplete:          "완료",
		KeyAllSucceeded:      "모든 다운로드가 완료되었습니다!\n성공: %d/%d",
		KeySomeFailed:        "다운로드가 완료되었습니다.\n성공: %d/%d\n실패: %d/%d",
		KeyBatchFinishedLog:  "일괄 다운로드 완료 - 성공: %d, 실패: %d",
		KeyFile:              "파일",
		KeyOpenFolder:        "다운로드 폴더 열기",
		KeyLanguage:          "언어",
		KeyErrorOpeningDir:   "폴더를 열 수 없습니다",
		KeyErrorCreatingDir:  "다운로드 폴더를 만들 수 없습니다",
		KeyFolderChanged:     "저장 폴더: %s",
		KeyDownloaderMissing: "yt-dlp를 사용할 수 없습니다: %s",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "TikTok Загрузчик",
		KeyURLInput:          "Ссылки TikTok (по одной в строке)",
		KeyURLPlaceholder:    "https://www.tiktok.com/@user/video/...",
		KeyURLCount:          "Ссылок: %d (верных: %d)",
		KeyURLCountEmpty:     "Ссылок: 0",
		KeySaveFolder:        "Папка:",
		KeyBrowse:            "Обзор",
		KeyQuality:           "Качество:",
		KeyRemoveWatermark:   "Без водяного знака",
		KeyDownloadAll:       "Скачать все",
		KeyPause:             "Пауза",
		KeyResume:            "Продолжить",
		KeyStop:              "Стоп",
		KeyWaiting:           "Ожидание...",
		KeyLog:               "Журнал",
		KeyNoValidURLs:       "Введите корректные ссылки TikTok.\nПо одной в строке.",
		KeyBatchStarted:      "Пакетная загрузка начата: %d ссылок",
		KeyItemStarted:       "%s Загрузка начата: %s",
		KeyItemDownloading:   "%s Загрузка...",
		KeyItemPercent:       "%s Загрузка... %.1f%%",
		KeyItemDone:          "%s Готово!",
		KeyItemFailed:        "%s Ошибка: %s",
		KeyItemStopped:       "%s Прервано",
		KeyBatchProgress:     "%d/%d готово (ошибок: %d)",
		KeyBatchFinished:     "Завершено: %d/%d (ошибок: %d)",
		KeyPaused:            "Загрузка приостановлена",
		KeyResumed:           "Загрузка продолжена",
		KeyWaitingResume:     "Пауза, ожидание продолжения...",
		KeyStopRequested:     "Запрошена остановка...",
		KeyStoppedByUser:     "Загрузка остановлена пользователем.",
		KeyComplete:          "Готово",
		KeyAllSucceeded:      "Все загрузки завершены!\nУспешно: %d/%d",
		KeySomeFailed:        "Загрузки завершены.\nУспешно: %d/%d\nОшибок: %d/%d",
		KeyBatchFinishedLog:  "Пакетная загрузка завершена - успешно: %d, ошибок: %d",
		KeyFile:              "Файл",
		KeyOpenFolder:        "Открыть папку загрузок",
		KeyLanguage:          "Язык",
		KeyErrorOpeningDir:   "Ошибка открытия папки",
		KeyErrorCreatingDir:  "Не удалось создать папку загрузок",
		KeyFolderChanged:     "Папка: %s",
		KeyDownloaderMissing: "yt-dlp недоступен: %s",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "TikTok Downloader",
		KeyURLInput:          "URLs do TikTok (uma por linha)",
		KeyURLPlaceholder:    "https://www.tiktok.com/@user/video/...",
		KeyURLCount:          "URLs: %d (válidas: %d)",
		KeyURLCountEmpty:     "URLs: 0",
		KeySaveFolder:        "Pasta:",
		KeyBrowse:            "Navegar",
		KeyQuality:           "Qualidade:",
		KeyRemoveWatermark:   "Remover marca d'água",
		KeyDownloadAll:       "Baixar tudo",
		KeyPause:             "Pausar",
		KeyResume:            "Retomar",
		KeyStop:              "Parar",
		KeyWaiting:           "Aguardando...",
		KeyLog:               "Registro",
		KeyNoValidURLs:       "Digite URLs válidas do TikTok.\nUma por linha.",
		KeyBatchStarted:      "Download em lote iniciado: %d URLs",
		KeyItemStarted:       "%s Download iniciado: %s",
		KeyItemDownloading:   "%s Baixando...",
		KeyItemPercent:       "%s Baixando... %.1f%%",
		KeyItemDone:          "%s Concluído!",
		KeyItemFailed:        "%s Falhou: %s",
		KeyItemStopped:       "%s Interrompido",
		KeyBatchProgress:     "%d/%d concluídos (falhas: %d)",
		KeyBatchFinished:     "Finalizado: %d/%d (falhas: %d)",
		KeyPaused:            "Download pausado",
		KeyResumed:           "Download retomado",
		KeyWaitingResume:     "Pausado, aguardando retomada...",
		KeyStopRequested:     "Parada solicitada...",
		KeyStoppedByUser:     "O download foi interrompido pelo usuário.",
		KeyComplete:          "Concluído",
		KeyAllSucceeded:      "Todos os downloads concluídos!\nSucesso: %d/%d",
		KeySomeFailed:        "Downloads finalizados.\nSucesso: %d/%d\nFalhas: %d/%d",
		KeyBatchFinishedLog:  "Download em lote finalizado - sucesso: %d, falhas: %d",
		KeyFile:              "Arquivo",
		KeyOpenFolder:        "Abrir pasta de downloads",
		KeyLanguage:          "Idioma",
		KeyErrorOpeningDir:   "Erro ao abrir pasta",
		KeyErrorCreatingDir:  "Não foi possível criar a pasta de downloads",
		KeyFolderChanged:     "Pasta: %s",
		KeyDownloaderMissing: "yt-dlp não está disponível: %s",
	}
}
