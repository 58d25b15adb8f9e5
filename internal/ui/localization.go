package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyInputs             = "inputs"
	KeyResults            = "results"
	KeyHistory            = "history"
	KeyActivePowerLabel   = "active_power_label"
	KeyPowerFactorLabel   = "power_factor_label"
	KeyApparentPowerLabel = "apparent_power_label"
	KeyReactivePowerLabel = "reactive_power_label"
	KeyAngleLabel         = "angle_label"
	KeyUpdate             = "update"
	KeyLoad               = "load"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeyExportHistory      = "export_history"
	KeyClearHistory       = "clear_history"
	KeyHistoryExported    = "history_exported"
	KeyExportFailed       = "export_failed"
	KeyPleaseEnterValues  = "please_enter_values"
	KeySettingsSaved      = "settings_saved"
	KeyAxisActivePower    = "axis_active_power"
	KeyAxisReactivePower  = "axis_reactive_power"
	KeyDiagramTitle       = "diagram_title"
	KeyPowerFactorInfo    = "power_factor_info"
	KeyDefaultActivePower = "default_active_power"
	KeyDefaultPowerFactor = "default_power_factor"
	KeyResultDecimals     = "result_decimals"
	KeyAngleUnit          = "angle_unit"
	KeyHistoryLimit       = "history_limit"
	KeyExportDirectory    = "export_directory"
	KeyAutoRevealExport   = "auto_reveal_export"
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
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Power Triangle",
		KeyInputs:             "Inputs",
		KeyResults:            "Results",
		KeyHistory:            "History",
		KeyActivePowerLabel:   "Active Power (kW):",
		KeyPowerFactorLabel:   "Power Factor:",
		KeyApparentPowerLabel: "Apparent Power (S):",
		KeyReactivePowerLabel: "Reactive Power (Q):",
		KeyAngleLabel:         "Angle φ:",
		KeyUpdate:             "Update",
		KeyLoad:               "Load",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeyExportHistory:      "Export History as CSV",
		KeyClearHistory:       "Clear History",
		KeyHistoryExported:    "History exported",
		KeyExportFailed:       "Export failed",
		KeyPleaseEnterValues:  "Please enter both values",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyAxisActivePower:    "Active Power (kW)",
		KeyAxisReactivePower:  "Reactive Power (kVAr)",
		KeyDiagramTitle:       "Power Triangle",
		KeyDefaultActivePower: "Default Active Power (kW)",
		KeyDefaultPowerFactor: "Default Power Factor",
		KeyResultDecimals:     "Result Decimal Places",
		KeyAngleUnit:          "Angle Unit",
		KeyHistoryLimit:       "History Size",
		KeyExportDirectory:    "Export Directory",
		KeyAutoRevealExport:   "Reveal exported file",
		KeyPowerFactorInfo: "The power factor (PF) evaluates the efficiency of electrical energy use in a system. " +
			"It is the ratio between active power, which performs useful work, and apparent power, which includes " +
			"both active and reactive power. Expressed as the cosine of the phase angle between current and voltage, " +
			"a PF close to 1 indicates high efficiency in energy utilization.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Треугольник мощностей",
		KeyInputs:             "Входные данные",
		KeyResults:            "Результаты",
		KeyHistory:            "История",
		KeyActivePowerLabel:   "Активная мощность (кВт):",
		KeyPowerFactorLabel:   "Коэффициент мощности:",
		KeyApparentPowerLabel: "Полная мощность (S):",
		KeyReactivePowerLabel: "Реактивная мощность (Q):",
		KeyAngleLabel:         "Угол φ:",
		KeyUpdate:             "Обновить",
		KeyLoad:               "Загрузить",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeyExportHistory:      "Экспорт истории в CSV",
		KeyClearHistory:       "Очистить историю",
		KeyHistoryExported:    "История экспортирована",
		KeyExportFailed:       "Ошибка экспорта",
		KeyPleaseEnterValues:  "Пожалуйста, введите оба значения",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyAxisActivePower:    "Активная мощность (кВт)",
		KeyAxisReactivePower:  "Реактивная мощность (кВАр)",
		KeyDiagramTitle:       "Треугольник мощностей",
		KeyDefaultActivePower: "Активная мощность по умолчанию (кВт)",
		KeyDefaultPowerFactor: "Коэффициент мощности по умолчанию",
		KeyResultDecimals:     "Знаков после запятой",
		KeyAngleUnit:          "Единица угла",
		KeyHistoryLimit:       "Размер истории",
		KeyExportDirectory:    "Папка экспорта",
		KeyAutoRevealExport:   "Показывать экспортированный файл",
		KeyPowerFactorInfo: "Коэффициент мощности (PF) оценивает эффективность использования электроэнергии в системе. " +
			"Это отношение активной мощности, выполняющей полезную работу, к полной мощности, включающей активную и " +
			"реактивную составляющие. Выражается косинусом угла сдвига фаз между током и напряжением; значение, близкое " +
			"к 1, означает высокую эффективность использования энергии.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Triângulo de Potências",
		KeyInputs:             "Entradas",
		KeyResults:            "Resultados",
		KeyHistory:            "Histórico",
		KeyActivePowerLabel:   "Potência Ativa (kW):",
		KeyPowerFactorLabel:   "Fator de Potência:",
		KeyApparentPowerLabel: "Potência Aparente (S):",
		KeyReactivePowerLabel: "Potência Reativa (Q):",
		KeyAngleLabel:         "Ângulo φ:",
		KeyUpdate:             "Atualizar",
		KeyLoad:               "Carregar",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeyExportHistory:      "Exportar Histórico como CSV",
		KeyClearHistory:       "Limpar Histórico",
		KeyHistoryExported:    "Histórico exportado",
		KeyExportFailed:       "Falha na exportação",
		KeyPleaseEnterValues:  "Por favor, insira ambos os valores",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyAxisActivePower:    "Potência Ativa (kW)",
		KeyAxisReactivePower:  "Potência Reativa (kVAr)",
		KeyDiagramTitle:       "Triângulo de Potências",
		KeyDefaultActivePower: "Potência Ativa Padrão (kW)",
		KeyDefaultPowerFactor: "Fator de Potência Padrão",
		KeyResultDecimals:     "Casas Decimais",
		KeyAngleUnit:          "Unidade do Ângulo",
		KeyHistoryLimit:       "Tamanho do Histórico",
		KeyExportDirectory:    "Diretório de Exportação",
		KeyAutoRevealExport:   "Revelar arquivo exportado",
		KeyPowerFactorInfo: "O fator de potência (FP) avalia a eficiência do uso de energia elétrica em um sistema. " +
			"É a razão entre a potência ativa, que realiza trabalho útil, e a potência aparente, que inclui as " +
			"componentes ativa e reativa. Expresso como o cosseno do ângulo de fase entre corrente e tensão, um FP " +
			"próximo de 1 indica alta eficiência no uso da energia.",
	}
}
