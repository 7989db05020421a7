package urls

// Documentation URLs for guides and troubleshooting
// All URLs point to the documentation site at https://gfpint.github.io/gfpint/

// GettingStarted is the quick start guide covering installation,
// identity setup, and filing a first report.
const GettingStarted = "https://gfpint.github.io/gfpint/getting-started/"

// ReportingGuide explains the report wizard in detail, including
// brewery suggestions, typo correction, and the new-beer flow.
const ReportingGuide = "https://gfpint.github.io/gfpint/guides/reporting/"

// StatusGuide documents the venue gluten free status values and
// when each one applies.
const StatusGuide = "https://gfpint.github.io/gfpint/guides/venue-status/"

// Troubleshooting provides solutions to common issues encountered
// with connectivity, suggestions, and failed submissions.
const Troubleshooting = "https://gfpint.github.io/gfpint/troubleshooting/"

// Website is the public venue directory this client reports into.
const Website = "https://www.gfpint.com/"
