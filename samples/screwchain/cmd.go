// Package main chains screw motions with the pga library and logs the
// trajectory they sweep out.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"math"
	"os"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.viam.com/utils"

	"go.viam.com/pga"
)

var logger = golog.NewDevelopmentLogger("screwchain")

const defaultConfig = `{
	"translation": {"x": 1, "y": 0, "z": 0},
	"rotation": {"type": "axis_angle", "value": {"th": 1.5707964, "x": 0, "y": 0, "z": 1}}
}`

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) (err error) {
	flag.Parse()

	raw := []byte(defaultConfig)
	if flag.Arg(0) != "" {
		raw, err = os.ReadFile(flag.Arg(0))
		if err != nil {
			return err
		}
	}

	var cfg pga.MotorConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate("motor"); err != nil {
		return err
	}
	pose, err := cfg.ParseConfig()
	if err != nil {
		return err
	}

	start := r3.Vector{X: 1}
	logger.Infow("base pose", "position", pose.TransformR3(start))

	// Step an eighth of a turn around the z axis while climbing half a unit.
	axis := pga.JoinPoints(pga.NewPoint(0, 0, 0), pga.NewPoint(0, 0, 1))
	step := pga.NewMotorFromScrew(math.Pi/4, 0.5, axis)
	for i := 0; i < 8; i++ {
		pose = step.MulMotor(pose).Normalized()
		logger.Infow("after step", "step", i+1, "position", pose.TransformR3(start))
	}

	screw := pose.Log()
	logger.Infow("screw axis of final pose",
		"direction", screw.Direction(),
		"moment", screw.Moment(),
	)

	dq := pose.DualQuat()
	logger.Infow("final pose as dual quaternion", "real", dq.Real, "dual", dq.Dual)
	logger.Infof("final pose as mat4:\n%v", pose.Mat4())
	return nil
}
