package gpu

import "log"

func logGLError(context string, glErr uint32) {
	log.Printf("gpu: GL error 0x%x during %s", glErr, context)
}
