package domain

const (
	// PluginAndroidApplication is the Android application plugin id.
	PluginAndroidApplication = "com.android.application"
	// PluginKotlinAndroid is the short Kotlin Android plugin id.
	PluginKotlinAndroid = "kotlin-android"
	// PluginKotlinAndroidQualified is the fully qualified Kotlin Android plugin id.
	PluginKotlinAndroidQualified = "org.jetbrains.kotlin.android"
	// PluginFlutter is the Flutter Gradle plugin id.
	// It must be applied after the Android and Kotlin plugins.
	PluginFlutter = "dev.flutter.flutter-gradle-plugin"
)

// IsPlatformPlugin reports whether id is the Android or a Kotlin Android plugin.
func IsPlatformPlugin(id string) bool {
	switch id {
	case PluginAndroidApplication, PluginKotlinAndroid, PluginKotlinAndroidQualified:
		return true
	default:
		return false
	}
}
