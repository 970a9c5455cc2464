package constant

// User-facing titles and descriptions shown as toasts by the client.
const (
	ToastInvalidConfigurationTitle       = "Invalid configuration"
	ToastInvalidConfigurationDescription = "Please select a dataset and at least one column"

	ToastInvalidFileFormatTitle       = "Invalid file format"
	ToastInvalidFileFormatDescription = "Please upload a CSV or Excel file"

	ToastFileUploadedTitle       = "File uploaded"
	ToastFileUploadedDescription = "Successfully uploaded %s"

	ToastKnowledgeStoreBuiltTitle       = "Knowledge Store Built"
	ToastKnowledgeStoreBuiltDescription = "Your text knowledge store has been successfully created"

	ToastEnhancementAppliedTitle       = "Enhancement Applied"
	ToastEnhancementAppliedDescription = "%s has been applied to sample data"
)
