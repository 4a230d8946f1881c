package cluster

import (
	"encoding/json"
	"fmt"
	"io"

	clusterrepository "github.com/raykube/rayctl/pkg/svc/repository/cluster"
	"sigs.k8s.io/yaml"
)

// Output format constants.
const (
	// OutputFormatPlain renders one field per line.
	OutputFormatPlain = "plain"
	// OutputFormatJSON renders the record as indented JSON.
	OutputFormatJSON = "json"
	// OutputFormatYAML renders the record as YAML.
	OutputFormatYAML = "yaml"
)

const outputFlag = "output"

// renderCluster writes a cluster record in the requested format.
func renderCluster(writer io.Writer, cluster clusterrepository.Cluster, format string) error {
	switch format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(cluster, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal cluster to json: %w", err)
		}

		_, _ = fmt.Fprintln(writer, string(data))
	case OutputFormatYAML:
		data, err := yaml.Marshal(cluster)
		if err != nil {
			return fmt.Errorf("marshal cluster to yaml: %w", err)
		}

		_, _ = fmt.Fprint(writer, string(data))
	case OutputFormatPlain:
		_, _ = fmt.Fprintf(writer, "name: %s\n", cluster.Name)
		_, _ = fmt.Fprintf(writer, "host: %s\n", cluster.Host)
		_, _ = fmt.Fprintf(writer, "ip: %s\n", cluster.IP)
		_, _ = fmt.Fprintf(writer, "port: %s\n", cluster.Port)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	return nil
}
