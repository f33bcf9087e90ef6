package banner

import (
	"fmt"

	"postsdb/pkg/config"
)

const banner = `
██████╗  ██████╗ ███████╗████████╗███████╗    ██████╗ ██████╗
██╔══██╗██╔═══██╗██╔════╝╚══██╔══╝██╔════╝    ██╔══██╗██╔══██╗
██████╔╝██║   ██║███████╗   ██║   ███████╗    ██║  ██║██████╔╝
██╔═══╝ ██║   ██║╚════██║   ██║   ╚════██║    ██║  ██║██╔══██╗
██║     ╚██████╔╝███████║   ██║   ███████║    ██████╔╝██████╔╝
╚═╝      ╚═════╝ ╚══════╝   ╚═╝   ╚══════╝    ╚═════╝ ╚═════╝
`

// PrintWithEff prints the startup banner with the effective configuration
// and the supported actions.
func PrintWithEff(eff config.EffectiveConfigResult, version string, actions []string) {
	fmt.Print(banner)
	fmt.Println("== Config =====================================================")
	fmt.Printf("Listen:   %s\n", eff.Addr)
	fmt.Printf("Engine:   %s\n", eff.Engine)
	if version != "" {
		fmt.Printf("Version:  %s\n", version)
	}
	fmt.Printf("Config:   %s\n", eff.Source)

	fmt.Println("\n== Actions ====================================================")
	for _, a := range actions {
		fmt.Printf("GET /posts.%s\n", a)
	}

	fmt.Println("\n== Examples ===================================================")
	fmt.Println("curl 'http://<host>:<port>/posts.create?content=hello'")
	fmt.Println("curl 'http://<host>:<port>/posts.list'")
	fmt.Println("curl 'http://<host>:<port>/posts.edit?id=1&content=bye'")

	if eff.Config != nil {
		if eff.Config.Server.TLS.CertFile != "" && eff.Config.Server.TLS.KeyFile != "" {
			fmt.Println("\n- TLS: configured")
		} else {
			fmt.Println("\n- TLS: unconfigured")
		}
		if eff.Config.Security.RateLimit.RPS > 0 {
			fmt.Printf("- Rate limit: %.1f rps (burst %d)\n", eff.Config.Security.RateLimit.RPS, eff.Config.Security.RateLimit.Burst)
		} else {
			fmt.Println("- Rate limit: disabled")
		}
		if eff.Config.Reporting.Enabled {
			fmt.Printf("- Reporting: enabled (cron=%s)\n", eff.Config.Reporting.Cron)
		} else {
			fmt.Println("- Reporting: disabled")
		}
	}

	fmt.Println("\n== Logs: =================================================")
}
