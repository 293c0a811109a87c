package appdetect

type craDetector struct {
}

func (cd *craDetector) DisplayName() string {
	return "Create React App"
}

func (cd *craDetector) DetectProject(projectDir string) (*Project, error) {
	packagesJson := readManifest(projectDir)
	if packagesJson == nil {
		return nil, nil
	}

	version, ok := packagesJson.dependency("react-scripts")
	if !ok {
		return nil, nil
	}

	cra := &CRAProject{}
	_, cra.HasReactRouter = packagesJson.dependency("react-router-dom")

	return &Project{
		Framework:      CRA,
		Version:        version,
		BuildCommand:   "npm run build",
		BuildOutputDir: "build",
		CRA:            cra,
	}, nil
}
