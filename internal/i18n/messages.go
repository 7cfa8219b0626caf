package i18n

import "golang.org/x/text/language"

var messages = map[language.Tag]map[string]string{
	language.English: {
		"welcome":           "Fontship %s",
		"outro":             "Fontship run complete",
		"setup-true":        "yes",
		"setup-false":       "no",
		"status-header":     "Checking project status",
		"status-is-repo":    "Project is a git repository:",
		"status-has-head":   "Repository has at least one commit:",
		"status-identity":   "Committer identity is configured:",
		"status-clean":      "Working tree is clean:",
		"status-branch":     "Current branch: %s",
		"status-project":    "Project name: %s",
		"status-version":    "Font version: %s",
		"commit-header":     "Recording release commit",
		"commit-done":       "Created commit %s",

		"error-unknown":       "Unknown error",
		"error-configuration": "Configuration error",
		"error-repository":    "No git repository found",
		"error-identity":      "No committer identity configured, set git user.name and user.email",
		"error-head":          "HEAD does not point at a commit",
		"error-tree":          "Tree object not found",
		"error-io":            "Could not write to the repository",
		"error-stale_parent":  "HEAD changed while committing, try again",
		"error-validation":    "Invalid input",
		"error-internal":      "Internal error",
		"error-no-changes":    "Nothing to commit",
	},
	language.Turkish: {
		"welcome":           "Fontship %s",
		"outro":             "Fontship işini bitirdi",
		"setup-true":        "evet",
		"setup-false":       "hayır",
		"status-header":     "Proje durumu denetleniyor",
		"status-is-repo":    "Proje bir git deposu:",
		"status-has-head":   "Depoda en az bir işleme var:",
		"status-identity":   "İşleyen kimliği ayarlı:",
		"status-clean":      "Çalışma ağacı temiz:",
		"status-branch":     "Geçerli dal: %s",
		"status-project":    "Proje adı: %s",
		"status-version":    "Font sürümü: %s",
		"commit-header":     "Sürüm işlemesi kaydediliyor",
		"commit-done":       "%s işlemesi oluşturuldu",

		"error-unknown":       "Bilinmeyen hata",
		"error-configuration": "Yapılandırma hatası",
		"error-repository":    "Git deposu bulunamadı",
		"error-identity":      "İşleyen kimliği ayarlı değil, git user.name ve user.email ayarlayın",
		"error-head":          "HEAD bir işlemeyi göstermiyor",
		"error-tree":          "Ağaç nesnesi bulunamadı",
		"error-io":            "Depoya yazılamadı",
		"error-stale_parent":  "İşleme sırasında HEAD değişti, yeniden deneyin",
		"error-validation":    "Geçersiz girdi",
		"error-internal":      "İç hata",
		"error-no-changes":    "İşlenecek bir şey yok",
	},
}
