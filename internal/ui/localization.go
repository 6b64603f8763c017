package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyAddFiles         = "add_files"
	KeyMergePDFs        = "merge_pdfs"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyDropHere         = "drop_here"
	KeyNoFilesTitle     = "no_files_title"
	KeyNoFilesMessage   = "no_files_message"
	KeySuccessTitle     = "success_title"
	KeyMergeSuccess     = "merge_success"
	KeyMergeError       = "merge_error"
	KeyMerging          = "merging"
	KeyMergeCompleted   = "merge_completed"
	KeySkippedFiles     = "skipped_files"
	KeyFileCount        = "file_count"
	KeyPages            = "pages"
	KeyOutputFileName   = "output_file_name"
	KeyDividerPage      = "divider_page"
	KeyValidationMode   = "validation_mode"
	KeyRevealOnComplete = "reveal_on_complete"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyErrorOpeningFile = "error_opening_file"
	KeyOutputIsInput    = "output_is_input"
	KeyAddFolder        = "add_folder"
	KeyNoPDFsInFolder   = "no_pdfs_in_folder"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"it": "Italiano",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "PDF Merger",
		KeyAddFiles:         "Add PDF Files",
		KeyMergePDFs:        "Merge PDFs",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyDropHere:         "Drop files here",
		KeyNoFilesTitle:     "No Files",
		KeyNoFilesMessage:   "No PDF files selected for merging.",
		KeySuccessTitle:     "Success",
		KeyMergeSuccess:     "PDFs merged successfully into %s",
		KeyMergeError:       "An error occurred while merging PDFs",
		KeyMerging:          "Merging PDFs...",
		KeyMergeCompleted:   "Merge completed",
		KeySkippedFiles:     "Skipped %d file(s): not a PDF or already in the list",
		KeyFileCount:        "%d file(s)",
		KeyPages:            "%d pages",
		KeyOutputFileName:   "Default Output File Name",
		KeyDividerPage:      "Insert blank page between files",
		KeyValidationMode:   "Validation Mode",
		KeyRevealOnComplete: "Reveal merged file when done",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyErrorOpeningFile: "Error opening file",
		KeyOutputIsInput:    "The output file cannot be one of the files being merged: %s",
		KeyAddFolder:        "Add Folder...",
		KeyNoPDFsInFolder:   "No PDF files in this folder",
	}

	l.texts["it"] = map[string]string{
		KeyAppTitle:         "PDF Merger",
		KeyAddFiles:         "Aggiungi file PDF",
		KeyMergePDFs:        "Unisci PDF",
		KeySettings:         "Impostazioni",
		KeyFile:             "File",
		KeyLanguage:         "Lingua",
		KeyDropHere:         "Droppa qui i file",
		KeyNoFilesTitle:     "Nessun file",
		KeyNoFilesMessage:   "Nessun file PDF selezionato da unire.",
		KeySuccessTitle:     "Fatto",
		KeyMergeSuccess:     "PDF uniti correttamente in %s",
		KeyMergeError:       "Si è verificato un errore durante l'unione dei PDF",
		KeyMerging:          "Unione dei PDF in corso...",
		KeyMergeCompleted:   "Unione completata",
		KeySkippedFiles:     "%d file ignorati: non PDF o già presenti",
		KeyFileCount:        "%d file",
		KeyPages:            "%d pagine",
		KeyOutputFileName:   "Nome file di output predefinito",
		KeyDividerPage:      "Inserisci una pagina bianca tra i file",
		KeyValidationMode:   "Modalità di validazione",
		KeyRevealOnComplete: "Mostra il file unito al termine",
		KeySave:             "Salva",
		KeyCancel:           "Annulla",
		KeySettingsSaved:    "Impostazioni salvate!",
		KeyErrorOpeningFile: "Errore nell'apertura del file",
		KeyOutputIsInput:    "Il file di output non può essere uno dei file da unire: %s",
		KeyAddFolder:        "Aggiungi cartella...",
		KeyNoPDFsInFolder:   "Nessun file PDF in questa cartella",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Объединение PDF",
		KeyAddFiles:         "Добавить PDF",
		KeyMergePDFs:        "Объединить PDF",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyDropHere:         "Перетащите файлы сюда",
		KeyNoFilesTitle:     "Нет файлов",
		KeyNoFilesMessage:   "Не выбраны PDF-файлы для объединения.",
		KeySuccessTitle:     "Готово",
		KeyMergeSuccess:     "PDF успешно объединены в %s",
		KeyMergeError:       "Ошибка при объединении PDF",
		KeyMerging:          "Объединение PDF...",
		KeyMergeCompleted:   "Объединение завершено",
		KeySkippedFiles:     "Пропущено файлов: %d (не PDF или уже в списке)",
		KeyFileCount:        "Файлов: %d",
		KeyPages:            "Страниц: %d",
		KeyOutputFileName:   "Имя выходного файла",
		KeyDividerPage:      "Пустая страница между файлами",
		KeyValidationMode:   "Режим проверки",
		KeyRevealOnComplete: "Показать файл после объединения",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyErrorOpeningFile: "Ошибка открытия файла",
		KeyOutputIsInput:    "Выходной файл не может быть одним из объединяемых файлов: %s",
		KeyAddFolder:        "Добавить папку...",
		KeyNoPDFsInFolder:   "В этой папке нет PDF-файлов",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "PDF Merger",
		KeyAddFiles:         "Adicionar PDFs",
		KeyMergePDFs:        "Juntar PDFs",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyDropHere:         "Solte os arquivos aqui",
		KeyNoFilesTitle:     "Sem arquivos",
		KeyNoFilesMessage:   "Nenhum arquivo PDF selecionado para juntar.",
		KeySuccessTitle:     "Sucesso",
		KeyMergeSuccess:     "PDFs juntados com sucesso em %s",
		KeyMergeError:       "Ocorreu um erro ao juntar os PDFs",
		KeyMerging:          "Juntando PDFs...",
		KeyMergeCompleted:   "Junção concluída",
		KeySkippedFiles:     "%d arquivo(s) ignorado(s): não é PDF ou já está na lista",
		KeyFileCount:        "%d arquivo(s)",
		KeyPages:            "%d páginas",
		KeyOutputFileName:   "Nome Padrão do Arquivo de Saída",
		KeyDividerPage:      "Inserir página em branco entre arquivos",
		KeyValidationMode:   "Modo de Validação",
		KeyRevealOnComplete: "Mostrar arquivo ao concluir",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",
		KeyOutputIsInput:    "O arquivo de saída não pode ser um dos arquivos a serem mesclados: %s",
		KeyAddFolder:        "Adicionar pasta...",
		KeyNoPDFsInFolder:   "Nenhum arquivo PDF nesta pasta",
	}
}
