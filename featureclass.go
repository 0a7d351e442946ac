package gisutil

// FeatureClassSeparator joins a workspace and a feature class name. ESRI
// tooling expects the windows separator regardless of host os.
const FeatureClassSeparator = "\\"

const geodatabaseSuffix = ".gdb"

// IsGeodatabase - true when the workspace names a file geodatabase
func IsGeodatabase(workspace string) bool {
	// short workspaces compare their whole value against the suffix
	tail := workspace
	if len(workspace) > len(geodatabaseSuffix) {
		tail = workspace[len(workspace)-len(geodatabaseSuffix):]
	}
	return tail == geodatabaseSuffix
}

// GetFeatureClass - build a reference to a shapefile or geodatabase feature class.
// baseName must not carry an extension, workspace is either a folder (shapefiles)
// or a .gdb container. The path is composed only, nothing is checked on disk.
func GetFeatureClass(baseName string, workspace string) string {
	if IsGeodatabase(workspace) {
		return workspace + FeatureClassSeparator + baseName
	}
	return workspace + FeatureClassSeparator + baseName + ".shp"
}
