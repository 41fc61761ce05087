package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Costs are projected linearly with no inflation or discounting",
	"Staff cost is priced per full-time equivalent per year",
	"Downtime is priced per hour of estimated annual outage",
	"The reference vendor absorbs 40% of the incumbent's complexity overhead",
	"Vendor cost factors come from the published catalog for the selected size band",
}
