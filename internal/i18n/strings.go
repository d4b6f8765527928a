package i18n

// Key names a UI string.
type Key string

// String keys. Grouped by the screen that introduced them; several are
// shared across screens.
const (
	KeyErrorTitle        Key = "error_title"
	KeySuccessTitle      Key = "success_title"
	KeyNetworkErrorTitle Key = "network_error_title"
	KeyCannotConnect     Key = "cannot_connect"
	KeyCancel            Key = "cancel"

	// Login.
	KeyWelcomeBack      Key = "welcome_back"
	KeyCheckCropsToday  Key = "check_crops_today"
	KeyPhoneNumber      Key = "phone_number"
	KeyPassword         Key = "password"
	KeyLogin            Key = "login"
	KeyLoggingIn        Key = "logging_in"
	KeyLoginFailed      Key = "login_failed"
	KeyLoginSuccessful  Key = "login_successful"
	KeyInvalidCreds     Key = "invalid_credentials"
	KeyInvalidPhone     Key = "invalid_phone"
	KeyPasswordTooShort Key = "password_too_short"
	KeyContinueAsGuest  Key = "continue_as_guest"
	KeyNoAccount        Key = "no_account"
	KeySignUp           Key = "sign_up"

	// Signup.
	KeyJoinFarmLook      Key = "join_farmlook"
	KeyCreateAccountSub  Key = "create_account_sub"
	KeyFullName          Key = "full_name"
	KeySelectYourState   Key = "select_your_state"
	KeyConfirmPassword   Key = "confirm_password"
	KeyAgreeToTerms      Key = "agree_to_terms"
	KeyCreating          Key = "creating"
	KeyHaveAccount       Key = "have_account"
	KeyNameRequired      Key = "name_required"
	KeyStateRequired     Key = "state_required"
	KeyPasswordsMismatch Key = "passwords_mismatch"
	KeyMustAgree         Key = "must_agree"
	KeySignupFailed      Key = "signup_failed"
	KeySignupFallback    Key = "signup_fallback"
	KeyAccountCreated    Key = "account_created"

	// Crop select.
	KeyHelloFarmer    Key = "hello_farmer"
	KeyWhatGrowing    Key = "what_growing"
	KeySearchCrops    Key = "search_crops"
	KeySelectCropCont Key = "select_crop_continue"
	KeyContinueWith   Key = "continue_with"

	// Capture.
	KeyConfirmAnalyze Key = "confirm_analyze"
	KeyEnsureClear    Key = "ensure_clear"
	KeyAnalyze        Key = "analyze"
	KeyAnalyzing      Key = "analyzing"
	KeyAnalysisFailed Key = "analysis_failed"
	KeyGallery        Key = "gallery"
	KeyCapture        Key = "capture"

	// Result.
	KeyImageRejected    Key = "image_rejected"
	KeyConfidence       Key = "confidence"
	KeyCropType         Key = "crop_type"
	KeyActionPlan       Key = "action_plan"
	KeyImmediateActions Key = "immediate_actions"
	KeyOrganicRemedies  Key = "organic_remedies"
	KeyChemicalControls Key = "chemical_controls"
	KeyNewScan          Key = "new_scan"
	KeySaveReportBtn    Key = "save_report_btn"
	KeyNotLoggedIn      Key = "not_logged_in"
	KeyLoginToSave      Key = "login_to_save"
	KeySaveReportTitle  Key = "save_report_title"
	KeyEnterReportName  Key = "enter_report_name"
	KeyReportNameEmpty  Key = "report_name_empty"
	KeyNoAnalysisData   Key = "no_analysis_data"
	KeySaving           Key = "saving"
	KeyReportSaved      Key = "report_saved"
	KeySaveFallback     Key = "save_fallback"

	// Saved reports.
	KeySavedReports      Key = "saved_reports"
	KeyNoSavedReports    Key = "no_saved_reports"
	KeyCreateAccountFull Key = "create_account_full"
	KeyLoginOrCreate     Key = "login_or_create"
	KeyReportsFallback   Key = "reports_fallback"
	KeyReportNotFound    Key = "report_not_found"
	KeyReportFallback    Key = "report_fallback"
	KeyTreatmentPlan     Key = "treatment_plan"

	// Settings.
	KeyAppLanguage    Key = "app_language"
	KeyVerifiedFarmer Key = "verified_farmer"
	KeyLogout         Key = "logout"
)

// table holds the translated strings. Only english and hausa are
// populated; T falls back to english for the rest.
var table = map[Key]map[Lang]string{
	KeyErrorTitle:        {English: "Error", Hausa: "Kuskure"},
	KeySuccessTitle:      {English: "Success", Hausa: "Nasara"},
	KeyNetworkErrorTitle: {English: "Network Error", Hausa: "Kuskuren Cibiyar Sadarwa"},
	KeyCannotConnect:     {English: "Unable to connect to server", Hausa: "Ba za a iya haɗawa da uwar garken ba"},
	KeyCancel:            {English: "Cancel", Hausa: "Soke"},

	KeyWelcomeBack:      {English: "Welcome Back, Farmer", Hausa: "Barka da Komowa, Manomi"},
	KeyCheckCropsToday:  {English: "Let's check your crops today!", Hausa: "Bari mu duba amfanin gonarka yau!"},
	KeyPhoneNumber:      {English: "Phone Number", Hausa: "Lambar Waya"},
	KeyPassword:         {English: "Password", Hausa: "Kalmar Sirri"},
	KeyLogin:            {English: "Log in", Hausa: "Shiga ciki"},
	KeyLoggingIn:        {English: "Logging in...", Hausa: "Ana shiga..."},
	KeyLoginFailed:      {English: "Login Failed", Hausa: "Shiga bai yi nasara ba"},
	KeyLoginSuccessful:  {English: "Login successful", Hausa: "An shiga cikin nasara"},
	KeyInvalidCreds:     {English: "Invalid credentials", Hausa: "Bayanan shiga mara inganci"},
	KeyInvalidPhone:     {English: "Enter a valid Nigerian phone number", Hausa: "Shigar da lambar waya ta Najeriya mai inganci"},
	KeyPasswordTooShort: {English: "Password must be at least 6 characters", Hausa: "Kalmar sirri dole ta zama aƙalla harafi 6"},
	KeyContinueAsGuest:  {English: "Continue as Guest", Hausa: "Ci gaba a matsayin Baƙo"},
	KeyNoAccount:        {English: "Don't have an account?", Hausa: "Baka da asusu?"},
	KeySignUp:           {English: "Sign up", Hausa: "Yi rijista"},

	KeyJoinFarmLook:      {English: "Join FarmLook", Hausa: "Shiga FarmLook"},
	KeyCreateAccountSub:  {English: "Create an account to start managing your farm better.", Hausa: "Ƙirƙiri asusu don fara sarrafa gonarka mafi kyau."},
	KeyFullName:          {English: "Full Name", Hausa: "Cikakken Suna"},
	KeySelectYourState:   {English: "Select Your State", Hausa: "Zaɓi Jihar Ku"},
	KeyConfirmPassword:   {English: "Confirm Password", Hausa: "Tabbatar da Kalmar Sirri"},
	KeyAgreeToTerms:      {English: "I agree to the Terms and Conditions", Hausa: "Na amince da Sharuɗɗa"},
	KeyCreating:          {English: "Creating...", Hausa: "Ana ƙirƙira..."},
	KeyHaveAccount:       {English: "Already have an account?", Hausa: "Ana da asusu?"},
	KeyNameRequired:      {English: "Full name is required"},
	KeyStateRequired:     {English: "Please select your state"},
	KeyPasswordsMismatch: {English: "Passwords do not match"},
	KeyMustAgree:         {English: "You must agree to the terms"},
	KeySignupFailed:      {English: "Signup Failed"},
	KeySignupFallback:    {English: "Something went wrong"},
	KeyAccountCreated:    {English: "Account created successfully"},

	KeyHelloFarmer:    {English: "Hello, Farmer!", Hausa: "Sannu, Manomi!"},
	KeyWhatGrowing:    {English: "What Are You Growing?", Hausa: "Me Kake Noma?"},
	KeySearchCrops:    {English: "Search crops...", Hausa: "Nemo amfanin gona..."},
	KeySelectCropCont: {English: "Please select a crop to continue.", Hausa: "Ka zaɓi amfanin gona don ci gaba."},
	KeyContinueWith:   {English: "Continue with", Hausa: "Ci gaba da"},

	KeyConfirmAnalyze: {English: "Confirm and Analyze Picture", Hausa: "Tabbatar da Bincika Hoto"},
	KeyEnsureClear:    {English: "Ensure the picture is clear and well-lit for accurate analysis.", Hausa: "Tabbatar cewa hoton yana da kyau kuma yayi haske don cikakken bincike."},
	KeyAnalyze:        {English: "Analyze", Hausa: "Bincika"},
	KeyAnalyzing:      {English: "Analyzing...", Hausa: "Ana Bincike..."},
	KeyAnalysisFailed: {English: "Analysis Failed"},
	KeyGallery:        {English: "Gallery", Hausa: "Gidan Hoto"},
	KeyCapture:        {English: "Capture", Hausa: "Dauka Hoto"},

	KeyImageRejected:    {English: "Image is unclear, please retake a clear crop picture.", Hausa: "Hoton bai bayyana ba, da fatan za a sake ɗaukar hoton amfanin gona."},
	KeyConfidence:       {English: "Confidence", Hausa: "Amincewa"},
	KeyCropType:         {English: "Crop Type", Hausa: "Nau'in Amfanin Gona"},
	KeyActionPlan:       {English: "Action Plan", Hausa: "Matakin Gwaji"},
	KeyImmediateActions: {English: "Immediate Actions", Hausa: "Matakan Gaggawa"},
	KeyOrganicRemedies:  {English: "Organic Remedies", Hausa: "Magungunan Halitta"},
	KeyChemicalControls: {English: "Chemical Controls", Hausa: "Kula da Sinadarai"},
	KeyNewScan:          {English: "New Scan", Hausa: "Sabon Duba"},
	KeySaveReportBtn:    {English: "Save Report", Hausa: "Ajiye Rahoto"},
	KeyNotLoggedIn:      {English: "Not Logged In", Hausa: "Ba a Shiga ba"},
	KeyLoginToSave:      {English: "You must be logged in to save an analysis report.", Hausa: "Sai ka shiga kafin ajiye rahoton bincike."},
	KeySaveReportTitle:  {English: "Save Analysis Report", Hausa: "Ajiye Rahoton Bincike"},
	KeyEnterReportName:  {English: "Enter report name", Hausa: "Shigar da sunan rahoto"},
	KeyReportNameEmpty:  {English: "Report name cannot be empty!", Hausa: "Sunan rahoto ba zai iya zama fanko ba!"},
	KeyNoAnalysisData:   {English: "No analysis data available to save"},
	KeySaving:           {English: "Saving...", Hausa: "Ajiye..."},
	KeyReportSaved:      {English: "Report saved successfully!", Hausa: "An ajiye rahoton cikin nasara!"},
	KeySaveFallback:     {English: "Network error, try again", Hausa: "Kuskuren cibiyar sadarwa, sake gwadawa"},

	KeySavedReports:      {English: "Saved Reports", Hausa: "An Ajiye Rahotanni"},
	KeyNoSavedReports:    {English: "No saved reports found.", Hausa: "Babu rahotannin da aka ajiye."},
	KeyCreateAccountFull: {English: "Please create an account to get full access to all features!"},
	KeyLoginOrCreate:     {English: "Login or create an account"},
	KeyReportsFallback:   {English: "Failed to load reports"},
	KeyReportNotFound:    {English: "Report not found", Hausa: "Ba a sami rahoton ba"},
	KeyReportFallback:    {English: "Failed to load report"},
	KeyTreatmentPlan:     {English: "Treatment Plan", Hausa: "Shirin Magani"},

	KeyAppLanguage:    {English: "App Language", Hausa: "Harshen App"},
	KeyVerifiedFarmer: {English: "Verified Farmer", Hausa: "An Tabbatar da Manomi"},
	KeyLogout:         {English: "Logout", Hausa: "Fita Waje"},
}
