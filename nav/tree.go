package nav

// Tree is the site structure. Order here is publication order; the sidebar
// renders entries exactly as listed.
var Tree = []Node{
	{Title: "Home", Path: "index.md"},
	{Title: "Getting Started", Path: "getting-started.md"},
	{
		Title: "Architecture",
		Children: []Node{
			{Title: "Overview", Path: "architecture/overview.md"},
			{Title: "State Management", Path: "architecture/state-management.md"},
			{Title: "Camera Pipeline", Path: "architecture/camera-pipeline.md"},
			{Title: "Metadata & SQLite", Path: "architecture/metadata-sqlite.md"},
			{
				Title: "Decisions",
				Children: []Node{
					{Title: "ADR-0001 Nim Language", Path: "architecture/decisions/ADR-0001-nim-language.md"},
					{Title: "ADR-0002 Corun Framework", Path: "architecture/decisions/ADR-0002-corun-framework.md"},
					{Title: "ADR-0003 Observable State", Path: "architecture/decisions/ADR-0003-observable-state.md"},
				},
			},
		},
	},
	{
		Title: "API Reference",
		Children: []Node{
			{Title: "Overview", Path: "api/README.md"},
			{Title: "WebSocket API", Path: "api/websocket-api.md"},
			{Title: "HTTP API", Path: "api/http-api.md"},
			{Title: "RTSP Streaming", Path: "api/rtsp-streaming.md"},
			{
				Title: "Examples",
				Children: []Node{
					{Title: "Python Client", Path: "api/examples/python-client.md"},
					{Title: "JavaScript Client", Path: "api/examples/javascript-client.md"},
					{Title: "C# Client", Path: "api/examples/csharp-client.md"},
				},
			},
		},
	},
	{
		Title: "Configuration",
		Children: []Node{
			{Title: "Environments", Path: "configuration/environments.md"},
			{Title: "Factory Config", Path: "configuration/factory-config.md"},
			{Title: "License Config", Path: "configuration/license-config.md"},
			{Title: "Deployment Variants", Path: "configuration/deployment-variants.md"},
			{Title: "Camera System", Path: "configuration/camera-system.md"},
			{Title: "Network", Path: "configuration/network.md"},
			{Title: "Storage & Backup", Path: "configuration/storage-backup.md"},
			{Title: "Authentication", Path: "configuration/authentication.md"},
		},
	},
	{
		Title: "Camera System",
		Children: []Node{
			{Title: "Hardware Interface", Path: "camera/hardware-interface.md"},
			{Title: "Streaming", Path: "camera/streaming.md"},
			{Title: "Recording", Path: "camera/recording.md"},
			{Title: "Image Processing", Path: "camera/image-processing.md"},
		},
	},
	{
		Title: "Operations",
		Children: []Node{
			{Title: "Build and Deploy", Path: "operations/build-and-deploy.md"},
			{Title: "Build & Deploy (Alt)", Path: "operations/build-deploy.md"},
			{Title: "Monitoring", Path: "operations/monitoring.md"},
			{Title: "Performance", Path: "operations/performance.md"},
			{Title: "Troubleshooting", Path: "operations/troubleshooting.md"},
		},
	},
	{
		Title: "Security",
		Children: []Node{
			{Title: "Authentication", Path: "security/authentication.md"},
			{Title: "Permissions", Path: "security/permissions.md"},
			{Title: "SSL Certificates", Path: "security/ssl-certificates.md"},
		},
	},
	{
		Title: "Testing",
		Children: []Node{
			{Title: "Strategy", Path: "testing/testing-strategy.md"},
			{Title: "Strategies", Path: "testing/strategies.md"},
			{Title: "Test Cases", Path: "testing/test-cases.md"},
			{Title: "Validation", Path: "testing/validation.md"},
		},
	},
	{
		Title: "Integration",
		Children: []Node{
			{Title: "ONVIF Protocol", Path: "integration/onvif-protocol.md"},
			{Title: "Third Party", Path: "integration/third-party.md"},
		},
	},
	{
		Title: "Reference",
		Children: []Node{
			{Title: "Glossary", Path: "reference/glossary.md"},
			{Title: "Requirements", Path: "reference/requirements.md"},
			{Title: "State Observables", Path: "reference/state-observables.md"},
		},
	},
	{
		Title: "Releases",
		Children: []Node{
			{Title: "Changelog", Path: "releases/CHANGELOG.md"},
		},
	},
	{Title: "Glossary", Path: "glossary.md"},
}
