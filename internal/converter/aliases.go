package converter

// Upstream schemas name the same logical field differently depending on the
// integration. Each table lists candidate keys in priority order.
var (
	DoctorIDFields          = []string{"id", "codigo", "codigoPrestador", "codigo_prestador", "cd_prestador", "prestadorId", "medicoId"}
	DoctorNameFields        = []string{"nombres", "nombre", "nombreCompleto", "fullName"}
	DoctorPhotoFields       = []string{"retrato", "foto"}
	DoctorSpecialtyIDFields = []string{"especialidadId", "especialidad"}

	SpecialtyIDFields          = []string{"especialidadId", "id", "codigo"}
	SpecialtyDescriptionFields = []string{"descripcion", "nombre"}
	SpecialtyTypeFields        = []string{"tipo"}
	SpecialtyIconFields        = []string{"icono"}

	RoomCodeFields             = []string{"codigo", "id", "codigo_consultorio", "CD_CONSULTORIO", "consultorio_id"}
	RoomBuildingFields         = []string{"codigo_edificio", "edificio", "CD_EDIFICIO", "codigoEdificio", "edificio_id", "edificioId"}
	RoomFloorFields            = []string{"piso", "CD_PISO", "codigoPiso", "codigo_piso", "piso_id", "pisoId"}
	RoomFloorDescriptionFields = []string{"des_piso", "DES_PISO", "descripcion_piso", "DESCRIPCION_PISO", "descripcionPiso", "piso_descripcion"}
	RoomDescriptionFields      = []string{"des_consultorio", "DES_CONSULTORIO", "descripcion_consultorio", "DESCRIPCION_CONSULTORIO", "descripcion", "nombre", "consultorio", "consultorio_nombre"}

	BuildingCodeFields        = []string{"codigo", "id", "codigoEdificio", "CD_EDIFICIO", "edificio_id"}
	BuildingDescriptionFields = []string{"descripcion_edificio", "descripcion", "nombre", "DES_EDIFICIO", "edificioNombre", "nombre_edificio"}

	FloorCodeFields        = []string{"codigo", "id", "piso", "CD_PISO", "codigo_piso"}
	FloorDescriptionFields = []string{"descripcion", "des_piso", "DES_PISO", "descripcion_piso", "nombre"}

	DayCodeFields = []string{"codigo", "id"}
	DayNameFields = []string{"nombre", "descripcion", "name"}

	AgendaItemFields     = []string{"codigo_item_agendamiento", "id", "codigo", "codigo_agenda"}
	AgendaProviderFields = []string{"codigo_prestador", "codigoPrestador", "cd_prestador", "prestadorId", "medicoId"}
	AgendaDayFields      = []string{"codigo_dia", "dia", "diaCodigo", "dia_id"}
	AgendaStartFields    = []string{"hora_inicio", "horaInicio", "hora", "horario"}
	AgendaEndFields      = []string{"hora_fin", "horaFin", "horarioFin"}
	AgendaTypeFields     = []string{"tipo", "type"}
	AgendaRoomFields     = []string{"codigo_consultorio", "consultorio", "consultorioCodigo", "consultorio_id"}
)
